package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/JockByTheSea/npm-compromise-scan/internal/types"
)

type DenylistParser struct{}

func NewDenylistParser() DenylistParser {
	return DenylistParser{}
}

// Parse converts denylist text into Lists. Blank lines and lines starting
// with '#' are skipped; everything else must be a bare name or an exact
// name@version entry. The first invalid line aborts the whole parse.
func (p DenylistParser) Parse(ctx context.Context, content string) (types.Lists, error) {
	lists := types.NewLists()
	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, reason := parseDenylistEntry(line)
		if reason != "" {
			return types.Lists{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid denylist entry at line %d: '%s' (%s)", i+1, line, reason))
		}
		lists.Names[entry.Name] = struct{}{}
		if entry.Kind == types.DenylistEntryExact {
			lists.Exact[types.ExactKey{Name: entry.Name, Version: entry.Version}] = struct{}{}
		}
	}
	log.Ctx(ctx).Debug().
		Int("names", len(lists.Names)).
		Int("exact", len(lists.Exact)).
		Msg("denylist parsed")
	return lists, nil
}

// parseDenylistEntry classifies a trimmed, non-comment line. The version
// separator is the last '@' so that scoped names like @scope/pkg keep
// their leading '@'. Returns a non-empty reason when the line is invalid.
func parseDenylistEntry(line string) (types.DenylistEntry, string) {
	if !strings.Contains(line, "@") {
		return types.DenylistEntry{Kind: types.DenylistEntryName, Name: line}, ""
	}
	atCount := strings.Count(line, "@")
	if strings.HasPrefix(line, "@") {
		if atCount < 2 {
			// @scope/pkg with no version separator
			return types.DenylistEntry{Kind: types.DenylistEntryName, Name: line}, ""
		}
	} else if atCount > 1 {
		return types.DenylistEntry{}, "too many @ characters for unscoped package"
	}

	lastAt := strings.LastIndex(line, "@")
	namePart := line[:lastAt]
	versionPart := line[lastAt+1:]
	switch {
	case namePart == "":
		return types.DenylistEntry{}, "empty name part"
	case versionPart == "":
		return types.DenylistEntry{}, "empty version part"
	case strings.Contains(versionPart, "/"):
		return types.DenylistEntry{}, "version contains '/'"
	case !isASCIIAlphanumeric(versionPart[0]):
		return types.DenylistEntry{}, "version does not start with alphanumeric"
	}
	return types.DenylistEntry{
		Kind:    types.DenylistEntryExact,
		Name:    namePart,
		Version: versionPart,
	}, ""
}

func isASCIIAlphanumeric(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
