package integration

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JockByTheSea/npm-compromise-scan/internal/adapters"
	"github.com/JockByTheSea/npm-compromise-scan/internal/app"
	"github.com/JockByTheSea/npm-compromise-scan/internal/types"
	"github.com/JockByTheSea/npm-compromise-scan/tests/testutil"
)

const fixtureList = `# npm packages compromised in supply chain incidents
event-stream@3.3.6
flatmap-stream
left-pad
@scope/bad@1.0.0
`

const fixtureTree = `{
	"name": "sample-app",
	"version": "0.0.1",
	"dependencies": {
		"left-pad": {"version": "1.3.0"},
		"nice-dep": {
			"version": "2.1.0",
			"dependencies": {
				"event-stream": {
					"version": "3.3.6",
					"dependencies": {
						"flatmap-stream": {"version": "0.1.1"}
					}
				},
				"left-pad": {"version": "1.3.0"}
			}
		},
		"linked-workspace": {
			"dependencies": {
				"event-stream": {"version": "3.3.5"}
			}
		}
	}
}`

func newFixtureService(t *testing.T, out *bytes.Buffer) (app.Service, app.ScanRequest) {
	t.Helper()
	dir := t.TempDir()
	listPath := filepath.Join(dir, "compromised.txt")
	treePath := filepath.Join(dir, "npm-ls.json")
	testutil.WriteFile(t, listPath, fixtureList)
	testutil.WriteFile(t, treePath, fixtureTree)

	service := app.Service{
		Denylist: adapters.NewDenylistFileAdapter(),
		Tree:     adapters.NewTreeSourceAdapter(),
		Report:   adapters.NewReportWriterAdapter(out),
	}
	return service, app.ScanRequest{DenylistPath: listPath, TreePath: treePath}
}

func TestScanPipelineText(t *testing.T) {
	var buf bytes.Buffer
	service, req := newFixtureService(t, &buf)
	req.Format = types.ReportFormatText

	result, err := service.Scan(t.Context(), req)
	require.NoError(t, err)
	assert.True(t, result.AnyMatch)
	assert.Equal(t, 4, result.MatchCount)
	// left-pad@1.3.0 appears twice in the tree but is reported once.
	assert.Equal(t, 5, result.DependencyCount)

	want := "[NAME MATCH ] event-stream@3.3.5\n" +
		"[EXACT MATCH] event-stream@3.3.6\n" +
		"[NAME MATCH ] flatmap-stream@0.1.1\n" +
		"[NAME MATCH ] left-pad@1.3.0\n"
	assert.Equal(t, want, buf.String())
}

func TestScanPipelineJSON(t *testing.T) {
	var buf bytes.Buffer
	service, req := newFixtureService(t, &buf)
	req.Format = types.ReportFormatJSON

	result, err := service.Scan(t.Context(), req)
	require.NoError(t, err)
	assert.True(t, result.AnyMatch)

	var decoded struct {
		Matches []struct {
			MatchType string `json:"match_type"`
			Name      string `json:"name"`
			Version   string `json:"version"`
		} `json:"matches"`
		MatchCount       int      `json:"match_count"`
		CompromisedNames []string `json:"compromised_names"`
		CompromisedExact []string `json:"compromised_exact"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 4, decoded.MatchCount)
	assert.Equal(t, []string{"@scope/bad", "event-stream", "flatmap-stream", "left-pad"}, decoded.CompromisedNames)
	assert.Equal(t, []string{"@scope/bad@1.0.0", "event-stream@3.3.6"}, decoded.CompromisedExact)
	require.NotEmpty(t, decoded.Matches)
	assert.Equal(t, "name", decoded.Matches[0].MatchType)
	assert.Equal(t, "event-stream", decoded.Matches[0].Name)
	assert.Equal(t, "3.3.5", decoded.Matches[0].Version)
}

func TestScanPipelineCleanTree(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()
	listPath := filepath.Join(dir, "compromised.txt")
	treePath := filepath.Join(dir, "npm-ls.json")
	testutil.WriteFile(t, listPath, fixtureList)
	testutil.WriteFile(t, treePath, `{"dependencies": {"chalk": {"version": "5.3.0"}}}`)

	service := app.Service{
		Denylist: adapters.NewDenylistFileAdapter(),
		Tree:     adapters.NewTreeSourceAdapter(),
		Report:   adapters.NewReportWriterAdapter(&buf),
	}
	result, err := service.Scan(t.Context(), app.ScanRequest{
		DenylistPath: listPath,
		TreePath:     treePath,
		Format:       types.ReportFormatText,
	})
	require.NoError(t, err)
	assert.False(t, result.AnyMatch)
	assert.Equal(t, "No compromised dependencies found.\n", buf.String())
}
