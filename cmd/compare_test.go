package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"model-compare/core/document"
	"model-compare/core/graph"
	"model-compare/core/reconcile"
	"model-compare/core/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	archV1 = `{"graph": [{"nodes": [
		{"nodeid": "n1", "name": "A", "nodegroup_id": "g1"},
		{"nodeid": "n2", "name": "B", "nodegroup_id": "g1"}
	]}]}`
	archV2 = `{"graph": [{"nodes": [
		{"nodeid": "n2", "name": "B", "nodegroup_id": "g1"},
		{"nodeid": "n3", "name": "C", "nodegroup_id": "g2"}
	]}]}`
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	outputPath, reportFormat, recordRun, uploadReport = "", "", false, false

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCompare_DefaultOutput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "architecture_v1.json", archV1)
	writeFile(t, dir, "architecture_v2.json", archV2)

	stdout, err := runRoot(t, "architecture_v1.json", "architecture_v2.json")
	require.NoError(t, err)

	name := "compare_architecture_v1_vs_architecture_v2_results.txt"
	assert.Equal(t, "Results written to "+name+"\n", stdout)

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "Node ID - n1 - Node name - A - [NODE_GROUP_ID: g1]")
	assert.Contains(t, text, "Node ID - n3 - Node name - C - [NODE_GROUP_ID: g2]")
	assert.Contains(t, text, "Node ID - n2 - Node name - B - [NODE_GROUP_ID: g1]")
}

func TestCompare_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "v1.json", archV1)
	second := writeFile(t, dir, "v2.yaml", "graph:\n  nodes:\n    - nodeid: n2\n      name: B\n")
	out := filepath.Join(dir, "diff.json")

	_, err := runRoot(t, first, second, "--format", "json", "-o", out)
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var res reconcile.ComparisonResult
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, []string{"n1"}, res.OnlyInFirstIDs())
	assert.Empty(t, res.OnlyInSecondIDs())
	assert.Equal(t, []string{"n2"}, res.CommonIDs())
}

func TestCompare_Errors(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.json", archV1)
	broken := writeFile(t, dir, "broken.json", `{"graph": [`)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{
			name: "missing input",
			args: []string{valid, filepath.Join(dir, "nope.json"), "-o", filepath.Join(dir, "a.txt")},
			want: document.ErrInputNotFound,
		},
		{
			name: "invalid input",
			args: []string{broken, valid, "-o", filepath.Join(dir, "b.txt")},
			want: document.ErrInvalidDocument,
		},
		{
			name: "unwritable output",
			args: []string{valid, valid, "-o", filepath.Join(dir, "missing", "c.txt")},
			want: report.ErrOutputWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, err := runRoot(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, stdout)
		})
	}

	_, err := os.Stat(filepath.Join(dir, "a.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestCompare_ArgCount(t *testing.T) {
	_, err := runRoot(t, "only-one.json")
	assert.Error(t, err)
}

func TestCompare_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.json", archV1)

	_, err := runRoot(t, valid, valid, "--format", "xml")
	assert.ErrorContains(t, err, "unknown report format")
}

func TestLogExtractStats(t *testing.T) {
	tests := []struct {
		name  string
		stats graph.Stats
		want  []string
	}{
		{name: "clean", stats: graph.Stats{Graphs: 1}},
		{name: "missing graph", stats: graph.Stats{MissingGraph: true}, want: []string{"Document has no graph field; treating it as empty"}},
		{
			name:  "skips",
			stats: graph.Stats{Graphs: 2, GraphsWithoutNodes: 1, SkippedNodes: 3, DuplicateIDs: 1},
			want: []string{
				"Graphs without a nodes list were skipped",
				"Nodes without a nodeid were skipped",
				"Duplicate nodeids found; the last record wins",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			logExtractStats(zap.New(core), "v1.json", tt.stats)

			var got []string
			for _, e := range logs.All() {
				got = append(got, e.Message)
				assert.Equal(t, "v1.json", e.ContextMap()["source"])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
