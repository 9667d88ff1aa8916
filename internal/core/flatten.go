package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/JockByTheSea/npm-compromise-scan/internal/types"
)

type TreeFlattener struct{}

func NewTreeFlattener() TreeFlattener {
	return TreeFlattener{}
}

// Flatten collects every versioned (name, version) occurrence in the tree
// into a deduplicated list sorted ascending by name then version. A pair
// reached through several paths is recorded once; the same name at two
// versions yields two entries.
func (f TreeFlattener) Flatten(ctx context.Context, tree types.Tree) []types.Dependency {
	var deps []types.Dependency
	seen := map[types.ExactKey]struct{}{}
	for name, node := range tree.Dependencies {
		deps = walk(name, node, deps, seen)
	}
	sort.Slice(deps, func(i, j int) bool {
		if deps[i].Name != deps[j].Name {
			return deps[i].Name < deps[j].Name
		}
		return deps[i].Version < deps[j].Version
	})
	log.Ctx(ctx).Debug().Int("dependencies", len(deps)).Msg("dependency tree flattened")
	return deps
}

func walk(name string, node types.TreeNode, deps []types.Dependency, seen map[types.ExactKey]struct{}) []types.Dependency {
	if node.Version != "" {
		key := types.ExactKey{Name: name, Version: node.Version}
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			deps = append(deps, types.Dependency{Name: name, Version: node.Version})
		}
	}
	for childName, child := range node.Dependencies {
		deps = walk(childName, child, deps, seen)
	}
	return deps
}
