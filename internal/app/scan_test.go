package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JockByTheSea/npm-compromise-scan/internal/ports"
	"github.com/JockByTheSea/npm-compromise-scan/internal/types"
)

type stubDenylist struct {
	content string
	err     error
}

func (s stubDenylist) Load(string) (string, error) {
	return s.content, s.err
}

type stubTree struct {
	doc string
	err error
}

func (s stubTree) Load(context.Context, ports.TreeRequest) (types.Tree, error) {
	if s.err != nil {
		return types.Tree{}, s.err
	}
	var tree types.Tree
	if err := json.Unmarshal([]byte(s.doc), &tree); err != nil {
		return types.Tree{}, err
	}
	return tree, nil
}

type captureReport struct {
	report types.Report
	format types.ReportFormat
	calls  int
}

func (c *captureReport) Write(report types.Report, format types.ReportFormat) error {
	c.report = report
	c.format = format
	c.calls++
	return nil
}

func TestScanApp(t *testing.T) {
	capture := &captureReport{}
	service := Service{
		Denylist: stubDenylist{content: "left-pad\nevent-stream@3.3.6\n"},
		Tree: stubTree{doc: `{
			"dependencies": {
				"left-pad": {"version": "1.0.0"},
				"event-stream": {
					"version": "3.3.6",
					"dependencies": {"event-stream": {"version": "3.3.5"}}
				}
			}
		}`},
		Report: capture,
	}

	result, err := service.Scan(t.Context(), ScanRequest{
		DenylistPath: "compromised.txt",
		TreePath:     "tree.json",
		Format:       types.ReportFormatText,
	})
	require.NoError(t, err)
	assert.True(t, result.AnyMatch)
	assert.Equal(t, 3, result.DependencyCount)
	assert.Equal(t, 3, result.MatchCount)
	assert.Equal(t, 1, capture.calls)
	assert.Equal(t, types.ReportFormatText, capture.format)

	wantMatches := []types.MatchRecord{
		{MatchType: types.MatchTypeName, Name: "event-stream", Version: "3.3.5"},
		{MatchType: types.MatchTypeExact, Name: "event-stream", Version: "3.3.6"},
		{MatchType: types.MatchTypeName, Name: "left-pad", Version: "1.0.0"},
	}
	if diff := cmp.Diff(wantMatches, capture.report.Matches); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"event-stream", "left-pad"}, capture.report.CompromisedNames)
	assert.Equal(t, []string{"event-stream@3.3.6"}, capture.report.CompromisedExact)
}

func TestScanAppNoMatches(t *testing.T) {
	capture := &captureReport{}
	service := Service{
		Denylist: stubDenylist{content: "# nothing denylisted\n"},
		Tree:     stubTree{doc: `{"dependencies": {"chalk": {"version": "5.3.0"}}}`},
		Report:   capture,
	}

	result, err := service.Scan(t.Context(), ScanRequest{DenylistPath: "compromised.txt"})
	require.NoError(t, err)
	assert.False(t, result.AnyMatch)
	assert.Equal(t, 0, result.MatchCount)
	assert.Equal(t, 1, result.DependencyCount)
	assert.Empty(t, capture.report.Matches)
}

func TestScanAppRequiresDenylistPath(t *testing.T) {
	service := Service{Report: &captureReport{}}
	_, err := service.Scan(t.Context(), ScanRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestScanAppStopsOnParseError(t *testing.T) {
	capture := &captureReport{}
	service := Service{
		Denylist: stubDenylist{content: "ok-name\nbroken@\n"},
		Tree:     stubTree{doc: `{"dependencies": {"ok-name": {"version": "1.0.0"}}}`},
		Report:   capture,
	}

	_, err := service.Scan(t.Context(), ScanRequest{DenylistPath: "compromised.txt"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Zero(t, capture.calls, "no report should be written after a parse error")
}
