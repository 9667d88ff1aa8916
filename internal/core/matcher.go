package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"github.com/JockByTheSea/npm-compromise-scan/internal/types"
)

type Matcher struct{}

func NewMatcher() Matcher {
	return Matcher{}
}

// Match classifies each flattened dependency against the denylist, in the
// order given. An exact (name, version) hit wins over a name-level hit, so
// a dependency is never reported twice. Returns the match records and
// whether anything matched at all.
func (m Matcher) Match(ctx context.Context, deps []types.Dependency, lists types.Lists) ([]types.MatchRecord, bool) {
	var matches []types.MatchRecord
	for _, dep := range deps {
		assert.NotEmpty(ctx, dep.Name, "dependency name must be set")
		assert.NotEmpty(ctx, dep.Version, "dependency version must be set")
		if _, ok := lists.Exact[types.ExactKey{Name: dep.Name, Version: dep.Version}]; ok {
			matches = append(matches, types.MatchRecord{
				MatchType: types.MatchTypeExact,
				Name:      dep.Name,
				Version:   dep.Version,
			})
			continue
		}
		if _, ok := lists.Names[dep.Name]; ok {
			matches = append(matches, types.MatchRecord{
				MatchType: types.MatchTypeName,
				Name:      dep.Name,
				Version:   dep.Version,
			})
		}
	}
	log.Ctx(ctx).Debug().Int("matches", len(matches)).Msg("dependencies classified")
	return matches, len(matches) > 0
}
