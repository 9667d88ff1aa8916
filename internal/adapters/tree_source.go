package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/JockByTheSea/npm-compromise-scan/internal/ports"
	"github.com/JockByTheSea/npm-compromise-scan/internal/shared"
	"github.com/JockByTheSea/npm-compromise-scan/internal/types"
)

// TreeSourceAdapter produces the dependency-tree document from a file,
// stdin, or a fresh `npm ls --all --json` invocation.
type TreeSourceAdapter struct {
	Stdin io.Reader
}

func NewTreeSourceAdapter() TreeSourceAdapter {
	return TreeSourceAdapter{Stdin: os.Stdin}
}

func (a TreeSourceAdapter) Load(ctx context.Context, req ports.TreeRequest) (types.Tree, error) {
	switch {
	case req.Path == "-":
		data, err := io.ReadAll(a.Stdin)
		if err != nil {
			return types.Tree{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read tree document from stdin").
				WithCause(err)
		}
		return decodeTree(data, "stdin")
	case req.Path != "":
		data, err := os.ReadFile(req.Path)
		if err != nil {
			return types.Tree{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("unable to read npm JSON file: %s", req.Path)).
				WithCause(err)
		}
		return decodeTree(data, req.Path)
	case req.NoRunNPM:
		return types.Tree{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no-run-npm specified but no npm JSON source provided")
	}
	return a.runNpmLs(ctx)
}

func (a TreeSourceAdapter) runNpmLs(ctx context.Context) (types.Tree, error) {
	cmd := exec.CommandContext(ctx, "npm", "ls", "--all", "--json")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return types.Tree{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to execute npm ls --all --json").
				WithCause(shared.CommandError(stderr.Bytes(), err))
		}
		// npm ls exits non-zero for unmet peer dependencies while still
		// printing a usable tree, so keep going with whatever it produced.
		log.Ctx(ctx).Warn().
			Int("exit_code", exitErr.ExitCode()).
			Msg("npm ls exited non-zero, still attempting to parse its output")
	}
	return decodeTree(stdout.Bytes(), "npm ls output")
}

func decodeTree(data []byte, source string) (types.Tree, error) {
	var tree types.Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return types.Tree{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse JSON from %s", source)).
			WithCause(err)
	}
	return tree, nil
}

var _ ports.TreeSourcePort = TreeSourceAdapter{}
