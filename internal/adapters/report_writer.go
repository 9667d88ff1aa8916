package adapters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/JockByTheSea/npm-compromise-scan/internal/ports"
	"github.com/JockByTheSea/npm-compromise-scan/internal/shared"
	"github.com/JockByTheSea/npm-compromise-scan/internal/types"
)

type ReportWriterAdapter struct {
	Out io.Writer
}

func NewReportWriterAdapter(out io.Writer) ReportWriterAdapter {
	return ReportWriterAdapter{Out: out}
}

func (a ReportWriterAdapter) Write(report types.Report, format types.ReportFormat) error {
	switch format {
	case types.ReportFormatText, "":
		return a.writeText(report)
	case types.ReportFormatJSON:
		return a.writeJSON(report)
	case types.ReportFormatYAML:
		return a.writeYAML(report)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unknown report format: %s", format))
}

func (a ReportWriterAdapter) writeText(report types.Report) error {
	if len(report.Matches) == 0 {
		_, err := fmt.Fprintln(a.Out, "No compromised dependencies found.")
		return writeError(err)
	}
	for _, m := range report.Matches {
		var label string
		switch m.MatchType {
		case types.MatchTypeExact:
			label = "[EXACT MATCH]"
		case types.MatchTypeName:
			label = "[NAME MATCH ]"
		default:
			continue
		}
		if _, err := fmt.Fprintf(a.Out, "%s %s\n", label, shared.FormatPackage(m.Name, m.Version)); err != nil {
			return writeError(err)
		}
	}
	return nil
}

type reportPayload struct {
	Matches          []types.MatchRecord `json:"matches" yaml:"matches"`
	MatchCount       int                 `json:"match_count" yaml:"match_count"`
	CompromisedNames []string            `json:"compromised_names" yaml:"compromised_names"`
	CompromisedExact []string            `json:"compromised_exact" yaml:"compromised_exact"`
}

func (a ReportWriterAdapter) writeJSON(report types.Report) error {
	data, err := json.MarshalIndent(buildPayload(report), "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode report as json").
			WithCause(err)
	}
	_, err = fmt.Fprintln(a.Out, string(data))
	return writeError(err)
}

func (a ReportWriterAdapter) writeYAML(report types.Report) error {
	data, err := yaml.Marshal(buildPayload(report))
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode report as yaml").
			WithCause(err)
	}
	_, err = a.Out.Write(data)
	return writeError(err)
}

// buildPayload normalizes nil slices so an empty report renders as empty
// arrays rather than nulls.
func buildPayload(report types.Report) reportPayload {
	payload := reportPayload{
		Matches:          report.Matches,
		MatchCount:       len(report.Matches),
		CompromisedNames: report.CompromisedNames,
		CompromisedExact: report.CompromisedExact,
	}
	if payload.Matches == nil {
		payload.Matches = []types.MatchRecord{}
	}
	if payload.CompromisedNames == nil {
		payload.CompromisedNames = []string{}
	}
	if payload.CompromisedExact == nil {
		payload.CompromisedExact = []string{}
	}
	return payload
}

func writeError(err error) error {
	if err == nil {
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to write report").
		WithCause(err)
}

var _ ports.ReportWriterPort = ReportWriterAdapter{}
