package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/JockByTheSea/npm-compromise-scan/internal/ports"
)

type DenylistFileAdapter struct{}

func NewDenylistFileAdapter() DenylistFileAdapter {
	return DenylistFileAdapter{}
}

func (a DenylistFileAdapter) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unable to read compromised list file: %s", path)).
			WithCause(err)
	}
	return string(data), nil
}

var _ ports.DenylistSourcePort = DenylistFileAdapter{}
