package app

import "github.com/JockByTheSea/npm-compromise-scan/internal/types"

type ScanRequest struct {
	DenylistPath string
	TreePath     string
	NoRunNPM     bool
	Format       types.ReportFormat
}

type ScanResult struct {
	DependencyCount int
	MatchCount      int
	AnyMatch        bool
}

type ValidateRequest struct {
	DenylistPath string
}

type ValidateResult struct {
	NameCount  int
	ExactCount int
}
