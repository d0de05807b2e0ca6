package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/sortscope/internal/ir"
)

// TraceSnapshot captures the complete trace of a scenario execution.
// All fields use canonical JSON serialization for deterministic comparison.
type TraceSnapshot struct {
	ScenarioName string         `json:"scenario_name"`
	Method       string         `json:"method"`
	Snapshot     []int          `json:"snapshot"`
	Trace        []ir.Operation `json:"trace"`
}

// toCanonicalMap converts a TraceSnapshot to a map[string]any for canonical JSON serialization.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	snapshot := s.Snapshot
	if snapshot == nil {
		snapshot = []int{}
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"method":        s.Method,
		"snapshot":      snapshot,
		"trace":         ir.CanonicalOps(s.Trace),
	}
}

// TraceJSON returns the canonical JSON golden form of result.
func TraceJSON(scenarioName string, result *Result) ([]byte, error) {
	snapshot := TraceSnapshot{
		ScenarioName: scenarioName,
		Method:       result.Method,
		Snapshot:     result.Snapshot,
		Trace:        result.Trace,
	}
	data, err := ir.MarshalCanonical(snapshot.toCanonicalMap())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trace: %w", err)
	}
	return data, nil
}

// RunWithGolden executes a scenario and compares the trace against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if trace doesn't match golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares the given result's trace against a golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	traceJSON, err := TraceJSON(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, traceJSON)
	return nil
}

// GoldenPath returns the golden file for a scenario file: a golden/
// directory next to it, named after the file without its extension.
func GoldenPath(scenarioFile string) string {
	dir := filepath.Dir(scenarioFile)
	base := filepath.Base(scenarioFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "golden", name+".golden")
}

// UpdateGolden writes the current trace as the golden file for scenarioFile.
func UpdateGolden(scenarioFile string, scenario *Scenario, result *Result) error {
	goldenPath := GoldenPath(scenarioFile)
	if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}

	data, err := TraceJSON(scenario.Name, result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(goldenPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

// CompareGolden reports whether result matches the golden file for
// scenarioFile. exists is false when there is no golden file to compare.
func CompareGolden(scenarioFile string, scenario *Scenario, result *Result) (match, exists bool, err error) {
	goldenData, err := os.ReadFile(GoldenPath(scenarioFile))
	if os.IsNotExist(err) {
		return false, false, nil
	}
	if err != nil {
		return false, true, fmt.Errorf("failed to read golden file: %w", err)
	}

	current, err := TraceJSON(scenario.Name, result)
	if err != nil {
		return false, true, err
	}
	return bytes.Equal(goldenData, current), true, nil
}
