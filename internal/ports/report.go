package ports

import (
	"github.com/JockByTheSea/npm-compromise-scan/internal/types"
)

type ReportWriterPort interface {
	Write(report types.Report, format types.ReportFormat) error
}
