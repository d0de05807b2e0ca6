package harness

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sortscope/internal/ir"
)

func TestRun_Passing(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/quick_small.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "quick", result.Method)
	assert.Equal(t, []int{3, 1, 4, 2}, result.Snapshot)
	assert.Len(t, result.Trace, 11)
	assert.Equal(t, 2, result.Cursor)
}

func TestRun_ReportsEveryFailedAssertion(t *testing.T) {
	s := &Scenario{
		Name:   "failing",
		Method: "insertion",
		Start:  []int{2, 1, 3},
		Length: 3,
		Steps:  1,
		Assertions: []Assertion{
			{Type: AssertView, Values: []int{1, 2, 3}},
			{Type: AssertOpCount, Count: 99},
			{Type: AssertMinOps, Count: 99},
			{Type: AssertOpAt, Index: 50, Op: &ExpectedOp{Kind: "read", Index: 0}},
			{Type: AssertOpAt, Index: 0, Op: &ExpectedOp{Kind: "read", Index: 2}},
			{Type: AssertWeights, Weights: map[string]float64{"2": 1}},
			{Type: AssertFinalView, Values: []int{3, 2, 1}},
			{Type: AssertSorted},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 7, "sorted holds, everything else fails")
	assert.Contains(t, result.Errors[0], "assertion 0 (view)")
	assert.Contains(t, result.Errors[0], "Expected: [1 2 3]")
	assert.Contains(t, result.Errors[0], "Actual: [2 1 3]")
	assert.Contains(t, result.Errors[1], "99 operations")
	assert.Contains(t, result.Errors[2], "at least 99 operations")
	assert.Contains(t, result.Errors[3], "log has")
	assert.Contains(t, result.Errors[4], "ops[0] = list[0]")
	assert.Contains(t, result.Errors[5], "Expected: {2:1}")
	assert.Contains(t, result.Errors[5], "Actual: {0:1}")
	assert.Contains(t, result.Errors[6], "Expected: [3 2 1]")
}

func TestRun_AssertionsDoNotMoveCursor(t *testing.T) {
	s := &Scenario{
		Name:   "cursor",
		Method: "bubble",
		Start:  []int{3, 2, 1},
		Length: 3,
		Steps:  3,
		Assertions: []Assertion{
			{Type: AssertFinalView, Values: []int{1, 2, 3}},
			{Type: AssertView, Values: []int{2, 3, 1}},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, 3, result.Cursor)
}

func TestRun_SeededShuffle(t *testing.T) {
	s := &Scenario{
		Name:    "shuffled",
		Method:  "merge",
		Length:  16,
		Seed:    42,
		Shuffle: true,
		Assertions: []Assertion{
			{Type: AssertView, Values: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}},
			{Type: AssertMinOps, Count: 15},
			{Type: AssertSorted},
		},
	}

	first, err := Run(s)
	require.NoError(t, err)
	second, err := Run(s)
	require.NoError(t, err)

	assert.True(t, first.Pass, "errors: %v", first.Errors)
	assert.Equal(t, first.Trace, second.Trace, "seeded runs are deterministic")
	for i := 0; i < 15; i++ {
		assert.Equal(t, ir.OpSwap, first.Trace[i].Kind)
		assert.Equal(t, 15-i, first.Trace[i].Index, "Fisher-Yates walks down from the end")
	}
}

func TestRun_UnknownMethod(t *testing.T) {
	_, err := Run(&Scenario{Name: "x", Method: "shell", Length: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown method")
}

func TestRunWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := LoadScenario("testdata/scenarios/merge_pair.yaml")
	require.NoError(t, err)

	result, err := RunWithLogger(s, logger)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Contains(t, buf.String(), "scenario finished")
	assert.Contains(t, buf.String(), "recorded run")
}
