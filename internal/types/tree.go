package types

// Tree is the root of an npm ls --all --json document. Fields other than
// the dependency mapping are ignored on decode.
type Tree struct {
	Dependencies map[string]TreeNode `json:"dependencies"`
}

// TreeNode is one installed package occurrence. Version may be absent for
// structural nodes (unmet or linked packages); such nodes contribute no
// dependency record but their children are still traversed.
type TreeNode struct {
	Version      string              `json:"version"`
	Dependencies map[string]TreeNode `json:"dependencies"`
}

// Dependency is a flattened (name, version) occurrence taken from the tree.
type Dependency struct {
	Name    string
	Version string
}
