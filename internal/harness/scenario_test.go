package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario writes content to a file named name in a temp directory.
func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_YAML(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/quick_small.yaml")
	require.NoError(t, err)

	assert.Equal(t, "quick_small", s.Name)
	assert.Equal(t, "quick", s.Method)
	assert.Equal(t, []int{3, 1, 4, 2}, s.Start)
	assert.Equal(t, 4, s.Length, "length defaults to len(start)")
	assert.Equal(t, 2, s.Steps)
	require.Len(t, s.Assertions, 6)

	op := s.Assertions[1]
	assert.Equal(t, AssertOpAt, op.Type)
	assert.Equal(t, 2, op.Index)
	require.NotNil(t, op.Op)
	assert.Equal(t, ExpectedOp{Kind: "swap", Index: 1, Other: 1}, *op.Op)
}

func TestLoadScenario_CUE(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/bubble_sweep.cue")
	require.NoError(t, err)

	assert.Equal(t, "bubble_sweep", s.Name)
	assert.Equal(t, "bubble", s.Method)
	assert.True(t, s.Sweep)
	assert.Equal(t, 3, s.Length)
	require.Len(t, s.Assertions, 4)
	assert.Equal(t, AssertOpCount, s.Assertions[1].Type)
	assert.Equal(t, 10, s.Assertions[1].Count)
}

func TestLoadScenario_NormalizesMethod(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/selection_reverse.yaml")
	require.NoError(t, err)
	assert.Equal(t, "selection", s.Method)
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name: "unknown yaml field",
			file: "typo.yaml",
			content: `name: x
description: d
method: quick
length: 3
assertion:
  - type: sorted
`,
			wantErr: "field assertion not found",
		},
		{
			name: "unknown cue field",
			file: "typo.cue",
			content: `name: "x"
description: "d"
method: "quick"
length: 3
lenght: 4
assertions: [{type: "sorted"}]
`,
			wantErr: "field lenght not found",
		},
		{
			name: "unknown cue assertion field",
			file: "typo_assert.cue",
			content: `name: "x"
description: "d"
method: "quick"
length: 3
assertions: [{type: "sorted", cuont: 1}]
`,
			wantErr: "assertions[0].cuont",
		},
		{
			name: "malformed cue",
			file: "bad.cue",
			content: `name: "x"
name: "y"
`,
			wantErr: "failed to parse CUE",
		},
		{
			name: "missing name",
			file: "noname.yaml",
			content: `description: d
method: quick
length: 3
assertions: [{type: sorted}]
`,
			wantErr: "name is required",
		},
		{
			name: "missing description",
			file: "nodesc.yaml",
			content: `name: x
method: quick
length: 3
assertions: [{type: sorted}]
`,
			wantErr: "description is required",
		},
		{
			name: "unknown method",
			file: "method.yaml",
			content: `name: x
description: d
method: shell
length: 3
assertions: [{type: sorted}]
`,
			wantErr: "unknown method",
		},
		{
			name: "no length",
			file: "length.yaml",
			content: `name: x
description: d
method: quick
assertions: [{type: sorted}]
`,
			wantErr: "length must be positive",
		},
		{
			name: "start length mismatch",
			file: "start.yaml",
			content: `name: x
description: d
method: quick
length: 4
start: [1, 2, 3]
assertions: [{type: sorted}]
`,
			wantErr: "start has 3 values, length is 4",
		},
		{
			name: "no assertions",
			file: "empty.yaml",
			content: `name: x
description: d
method: quick
length: 3
`,
			wantErr: "assertions list is required",
		},
		{
			name: "unknown assertion type",
			file: "atype.yaml",
			content: `name: x
description: d
method: quick
length: 3
assertions: [{type: trace_contains}]
`,
			wantErr: `unknown assertion type "trace_contains"`,
		},
		{
			name: "view without values",
			file: "view.yaml",
			content: `name: x
description: d
method: quick
length: 3
assertions: [{type: view}]
`,
			wantErr: "values is required for view",
		},
		{
			name: "op_at without op",
			file: "opat.yaml",
			content: `name: x
description: d
method: quick
length: 3
assertions: [{type: op_at, index: 0}]
`,
			wantErr: "op is required for op_at",
		},
		{
			name: "op_at bad kind",
			file: "opkind.yaml",
			content: `name: x
description: d
method: quick
length: 3
assertions: [{type: op_at, index: 0, op: {kind: peek, index: 0}}]
`,
			wantErr: `unknown op kind "peek"`,
		},
		{
			name: "weights bad key",
			file: "weights.yaml",
			content: `name: x
description: d
method: quick
length: 3
assertions: [{type: weights, weights: {"first": 1.0}}]
`,
			wantErr: `weights key "first" is not an index`,
		},
		{
			name:    "unsupported extension",
			file:    "scenario.json",
			content: `{}`,
			wantErr: "unsupported scenario file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, tt.file, tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestIsScenarioFile(t *testing.T) {
	assert.True(t, IsScenarioFile("a.yaml"))
	assert.True(t, IsScenarioFile("dir/a.yml"))
	assert.True(t, IsScenarioFile("a.cue"))
	assert.False(t, IsScenarioFile("a.golden"))
	assert.False(t, IsScenarioFile("a.json"))
}
