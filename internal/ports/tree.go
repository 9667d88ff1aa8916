package ports

import (
	"context"

	"github.com/JockByTheSea/npm-compromise-scan/internal/types"
)

// TreeRequest selects where the dependency-tree document comes from.
// Path is a file path, or "-" for stdin; when empty the adapter runs the
// package manager unless NoRunNPM is set.
type TreeRequest struct {
	Path     string
	NoRunNPM bool
}

type TreeSourcePort interface {
	Load(ctx context.Context, req TreeRequest) (types.Tree, error)
}
