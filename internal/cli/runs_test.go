package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRuns(t *testing.T) string {
	t.Helper()
	dbPath := createTestDatabase(t)
	writeRecording(t, dbPath, "run-b", swapPair())
	second := swapPair()
	second.Method = "selection"
	writeRecording(t, dbPath, "run-a", second)
	third := swapPair()
	third.Method = "insertion"
	writeRecording(t, dbPath, "run-b", third)
	return dbPath
}

func TestRunsMissingDatabaseFlag(t *testing.T) {
	_, err := execute(t, NewRunsCommand(&RootOptions{Format: "text"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestRunsEmptyDatabase(t *testing.T) {
	out, err := execute(t, NewRunsCommand(&RootOptions{Format: "text"}), "--db", createTestDatabase(t))
	require.NoError(t, err)
	assert.Contains(t, out, "No runs found")
}

func TestRunsText(t *testing.T) {
	out, err := execute(t, NewRunsCommand(&RootOptions{Format: "text"}), "--db", seedRuns(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Runs: 2 (last seq 3)")
	assert.Contains(t, out, "  run-b  2 recording(s)  6 ops  bubble, insertion\n")
	assert.Contains(t, out, "  run-a  1 recording(s)  3 ops  selection\n")
	assert.Less(t, strings.Index(out, "run-b"), strings.Index(out, "run-a"), "runs are listed in write order")
}

func TestRunsSingleRunJSON(t *testing.T) {
	out, err := execute(t, NewRunsCommand(&RootOptions{Format: "json"}), "--db", seedRuns(t), "--run", "run-b")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   RunsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, int64(3), resp.Data.LastSeq)
	assert.Equal(t, []RunSummary{{
		RunToken:   "run-b",
		Recordings: 2,
		Methods:    []string{"bubble", "insertion"},
		TotalOps:   6,
		LastSeq:    3,
	}}, resp.Data.Runs)
}

func TestRunsUnknownRun(t *testing.T) {
	_, err := execute(t, NewRunsCommand(&RootOptions{Format: "text"}), "--db", seedRuns(t), "--run", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "unknown run")
}
