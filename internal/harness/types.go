package harness

import "github.com/roach88/sortscope/internal/ir"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every assertion holds and no contract was violated.
	Pass bool `json:"pass"`

	// Method is the resolved algorithm name.
	Method string `json:"method"`

	// Snapshot is the starting array the trace replays from.
	Snapshot []int `json:"snapshot"`

	// Trace is the complete operation log, in order.
	// Used for op_at assertions and golden comparison.
	Trace []ir.Operation `json:"trace"`

	// Cursor is the playback position assertions were evaluated at.
	Cursor int `json:"cursor"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Snapshot: []int{},
		Trace:    []ir.Operation{},
		Errors:   []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
