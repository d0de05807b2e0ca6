package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/sortscope/internal/algo"
	"github.com/roach88/sortscope/internal/ir"
)

// Scenario defines one recorded run and the assertions it must satisfy.
//
// Field tags serve both decoders: yaml for .yaml/.yml files, json for .cue
// files (cue.Value.Decode follows json tags).
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// Method is the algorithm to record (see algo.Methods).
	Method string `yaml:"method" json:"method"`

	// Length is the array length. If zero, the length of Start is used.
	Length int `yaml:"length,omitempty" json:"length,omitempty"`

	// Start is an optional starting permutation. Without it the start is
	// drawn from Seed.
	Start []int `yaml:"start,omitempty" json:"start,omitempty"`

	// Seed fixes every random choice of the run.
	Seed uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// Shuffle starts from a sorted array and records the shuffle.
	Shuffle bool `yaml:"shuffle,omitempty" json:"shuffle,omitempty"`

	// Sweep appends a recorded read pass after the sort.
	Sweep bool `yaml:"sweep,omitempty" json:"sweep,omitempty"`

	// SkipSorted skips the algorithm if the array is already sorted.
	SkipSorted bool `yaml:"skip_sorted,omitempty" json:"skip_sorted,omitempty"`

	// Steps plays this many operations before assertions are evaluated.
	Steps int `yaml:"steps,omitempty" json:"steps,omitempty"`

	// Assertions validate the recording and the playback state.
	Assertions []Assertion `yaml:"assertions" json:"assertions"`
}

// Assertion validates one aspect of a run.
type Assertion struct {
	// Type specifies the assertion type:
	// - "final_view": View after playing the whole log equals Values
	// - "view": View at the current cursor equals Values
	// - "op_count": Log length equals Count
	// - "min_ops": Log length is at least Count
	// - "op_at": Log entry at Index equals Op
	// - "weights": Recency weights at the current cursor equal Weights
	// - "sorted": View after playing the whole log is ascending
	Type string `yaml:"type" json:"type"`

	// Values is the expected array (final_view, view).
	Values []int `yaml:"values,omitempty" json:"values,omitempty"`

	// Count is the expected log length (op_count, min_ops).
	Count int `yaml:"count,omitempty" json:"count,omitempty"`

	// Index is the log position (op_at).
	Index int `yaml:"index,omitempty" json:"index,omitempty"`

	// Op is the expected operation (op_at).
	Op *ExpectedOp `yaml:"op,omitempty" json:"op,omitempty"`

	// Weights maps array indices (as strings, since CUE labels are
	// strings) to expected weights (weights).
	Weights map[string]float64 `yaml:"weights,omitempty" json:"weights,omitempty"`
}

// ExpectedOp is an operation as written in a scenario file.
type ExpectedOp struct {
	Kind  string `yaml:"kind" json:"kind"`
	Index int    `yaml:"index" json:"index"`
	Other int    `yaml:"other,omitempty" json:"other,omitempty"`
	Value int    `yaml:"value,omitempty" json:"value,omitempty"`
}

// Operation converts e to an ir.Operation.
func (e ExpectedOp) Operation() ir.Operation {
	return ir.Operation{Kind: ir.OpKind(e.Kind), Index: e.Index, Other: e.Other, Value: e.Value}
}

// Assertion type constants.
const (
	AssertFinalView = "final_view"
	AssertView      = "view"
	AssertOpCount   = "op_count"
	AssertMinOps    = "min_ops"
	AssertOpAt      = "op_at"
	AssertWeights   = "weights"
	AssertSorted    = "sorted"
)

// Extensions lists the scenario file extensions LoadScenario accepts.
var Extensions = []string{".yaml", ".yml", ".cue"}

// IsScenarioFile reports whether path has a scenario file extension.
func IsScenarioFile(path string) bool {
	return slices.Contains(Extensions, filepath.Ext(path))
}

// LoadScenario reads and parses a scenario file. The format follows the
// extension: YAML for .yaml/.yml, CUE for .cue.
//
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario *Scenario
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		scenario, err = parseYAML(data)
	case ".cue":
		scenario, err = parseCUE(data, path)
	default:
		return nil, fmt.Errorf("unsupported scenario file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return scenario, nil
}

func parseYAML(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &scenario, nil
}

// scenarioFields and assertionFields are the labels a CUE scenario may use.
var (
	scenarioFields = []string{
		"name", "description", "method", "length", "start", "seed",
		"shuffle", "sweep", "skip_sorted", "steps", "assertions",
	}
	assertionFields = []string{"type", "values", "count", "index", "op", "weights"}
)

func parseCUE(data []byte, path string) (*Scenario, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", formatCUEError(err))
	}

	if err := checkFields(v, scenarioFields, ""); err != nil {
		return nil, err
	}
	list, err := v.LookupPath(cue.ParsePath("assertions")).List()
	if err == nil {
		for i := 0; list.Next(); i++ {
			if err := checkFields(list.Value(), assertionFields, fmt.Sprintf("assertions[%d].", i)); err != nil {
				return nil, err
			}
		}
	}

	var scenario Scenario
	if err := v.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to decode CUE: %w", formatCUEError(err))
	}
	return &scenario, nil
}

// checkFields rejects labels outside known, mirroring yaml KnownFields.
func checkFields(v cue.Value, known []string, prefix string) error {
	iter, err := v.Fields()
	if err != nil {
		return fmt.Errorf("failed to parse CUE: %w", formatCUEError(err))
	}
	for iter.Next() {
		label := iter.Selector().String()
		if !slices.Contains(known, label) {
			return fmt.Errorf("failed to parse CUE: field %s%s not found in scenario", prefix, label)
		}
	}
	return nil
}

// formatCUEError prefixes the first CUE error with its position.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	if positions := errors.Positions(first); len(positions) > 0 {
		pos := positions[0]
		return fmt.Errorf("%s:%d:%d: %w", pos.Filename(), pos.Line(), pos.Column(), first)
	}
	return first
}

// validateScenario checks that required fields are present and valid, and
// normalizes Method and Length.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	method, err := algo.Lookup(s.Method)
	if err != nil {
		return fmt.Errorf("method: %w", err)
	}
	s.Method = string(method)

	if s.Length == 0 {
		s.Length = len(s.Start)
	}
	if s.Length <= 0 {
		return fmt.Errorf("length must be positive (or give start)")
	}
	if s.Start != nil && len(s.Start) != s.Length {
		return fmt.Errorf("start has %d values, length is %d", len(s.Start), s.Length)
	}

	if s.Steps < 0 {
		return fmt.Errorf("steps must be non-negative")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertFinalView, AssertView:
		if a.Values == nil {
			return fmt.Errorf("assertions[%d]: values is required for %s", index, a.Type)
		}
	case AssertOpCount, AssertMinOps:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertOpAt:
		if a.Op == nil {
			return fmt.Errorf("assertions[%d]: op is required for op_at", index)
		}
		if !ir.OpKind(a.Op.Kind).Valid() {
			return fmt.Errorf("assertions[%d]: unknown op kind %q", index, a.Op.Kind)
		}
		if a.Index < 0 {
			return fmt.Errorf("assertions[%d]: index must be non-negative for op_at", index)
		}
	case AssertWeights:
		for key := range a.Weights {
			if _, err := strconv.Atoi(key); err != nil {
				return fmt.Errorf("assertions[%d]: weights key %q is not an index", index, key)
			}
		}
	case AssertSorted:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
