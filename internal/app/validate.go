package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/JockByTheSea/npm-compromise-scan/internal/core"
)

// Validate parses the denylist without scanning anything, reporting the
// number of name and exact entries it contains.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	denylistPath := strings.TrimSpace(req.DenylistPath)
	if denylistPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("compromised list path is required")
	}
	content, err := s.Denylist.Load(denylistPath)
	if err != nil {
		return ValidateResult{}, err
	}
	lists, err := core.NewDenylistParser().Parse(ctx, content)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		NameCount:  len(lists.Names),
		ExactCount: len(lists.Exact),
	}, nil
}
