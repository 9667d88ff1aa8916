package app

import (
	"os"

	"github.com/JockByTheSea/npm-compromise-scan/internal/adapters"
	"github.com/JockByTheSea/npm-compromise-scan/internal/ports"
)

type Service struct {
	Denylist ports.DenylistSourcePort
	Tree     ports.TreeSourcePort
	Report   ports.ReportWriterPort
}

func NewService() Service {
	return Service{
		Denylist: adapters.NewDenylistFileAdapter(),
		Tree:     adapters.NewTreeSourceAdapter(),
		Report:   adapters.NewReportWriterAdapter(os.Stdout),
	}
}
