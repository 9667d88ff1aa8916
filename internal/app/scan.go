package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/JockByTheSea/npm-compromise-scan/internal/core"
	"github.com/JockByTheSea/npm-compromise-scan/internal/ports"
	"github.com/JockByTheSea/npm-compromise-scan/internal/shared"
	"github.com/JockByTheSea/npm-compromise-scan/internal/types"
)

// Scan parses the denylist, obtains and flattens the dependency tree,
// classifies every installed package, and renders the report.
func (s Service) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	denylistPath := strings.TrimSpace(req.DenylistPath)
	if denylistPath == "" {
		return ScanResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("compromised list path is required")
	}
	content, err := s.Denylist.Load(denylistPath)
	if err != nil {
		return ScanResult{}, err
	}
	lists, err := core.NewDenylistParser().Parse(ctx, content)
	if err != nil {
		return ScanResult{}, err
	}
	tree, err := s.Tree.Load(ctx, ports.TreeRequest{
		Path:     strings.TrimSpace(req.TreePath),
		NoRunNPM: req.NoRunNPM,
	})
	if err != nil {
		return ScanResult{}, err
	}
	deps := core.NewTreeFlattener().Flatten(ctx, tree)
	matches, any := core.NewMatcher().Match(ctx, deps, lists)
	if err := s.Report.Write(buildReport(matches, lists), req.Format); err != nil {
		return ScanResult{}, err
	}
	return ScanResult{
		DependencyCount: len(deps),
		MatchCount:      len(matches),
		AnyMatch:        any,
	}, nil
}

func buildReport(matches []types.MatchRecord, lists types.Lists) types.Report {
	names := make([]string, 0, len(lists.Names))
	for name := range lists.Names {
		names = append(names, name)
	}
	sort.Strings(names)
	exact := make([]string, 0, len(lists.Exact))
	for key := range lists.Exact {
		exact = append(exact, shared.FormatPackage(key.Name, key.Version))
	}
	sort.Strings(exact)
	return types.Report{
		Matches:          matches,
		CompromisedNames: names,
		CompromisedExact: exact,
	}
}
