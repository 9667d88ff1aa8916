package types

type MatchType string

const (
	MatchTypeExact MatchType = "exact"
	MatchTypeName  MatchType = "name"
)

type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatYAML ReportFormat = "yaml"
)

// MatchRecord is one flattened dependency that matched the denylist.
type MatchRecord struct {
	MatchType MatchType `json:"match_type" yaml:"match_type"`
	Name      string    `json:"name" yaml:"name"`
	Version   string    `json:"version" yaml:"version"`
}

// Report is the full scan outcome handed to the report writer. Matches
// follow the sorted flattened dependency order; the denylist sets are
// sorted for display.
type Report struct {
	Matches          []MatchRecord
	CompromisedNames []string
	CompromisedExact []string
}
