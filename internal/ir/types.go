package ir

import "fmt"

// OpKind identifies which primitive access an Operation records.
type OpKind string

const (
	// OpRead records a read of Index. It never changes array state.
	OpRead OpKind = "read"

	// OpWrite records storing Value at Index.
	OpWrite OpKind = "write"

	// OpSwap records exchanging the values at Index and Other.
	OpSwap OpKind = "swap"
)

// Valid reports whether k is one of the known operation kinds.
func (k OpKind) Valid() bool {
	switch k {
	case OpRead, OpWrite, OpSwap:
		return true
	}
	return false
}

// Operation is an immutable record of one primitive access.
//
// Indices are always expressed in global (root array) coordinates, no matter
// which view issued the access. Other is only meaningful for OpSwap and Value
// only for OpWrite; both are zero otherwise.
type Operation struct {
	Kind  OpKind `json:"kind"`
	Index int    `json:"index"`
	Other int    `json:"other,omitempty"`
	Value int    `json:"value,omitempty"`
}

// Read returns a read operation at index i.
func Read(i int) Operation {
	return Operation{Kind: OpRead, Index: i}
}

// Write returns a write of v at index i.
func Write(i, v int) Operation {
	return Operation{Kind: OpWrite, Index: i, Value: v}
}

// Swap returns a swap of indices i and j.
func Swap(i, j int) Operation {
	return Operation{Kind: OpSwap, Index: i, Other: j}
}

// InBounds reports whether every index of op is a valid offset into an array
// of length n.
func (op Operation) InBounds(n int) bool {
	if op.Index < 0 || op.Index >= n {
		return false
	}
	if op.Kind == OpSwap && (op.Other < 0 || op.Other >= n) {
		return false
	}
	return true
}

// Apply performs op against values. Reads are no-ops.
// Panics if op is out of range for values.
func (op Operation) Apply(values []int) {
	switch op.Kind {
	case OpWrite:
		values[op.Index] = op.Value
	case OpSwap:
		values[op.Index], values[op.Other] = values[op.Other], values[op.Index]
	}
}

// String renders op the way it would read in source: list[i], list[i] = v,
// swap(i, j).
func (op Operation) String() string {
	switch op.Kind {
	case OpRead:
		return fmt.Sprintf("list[%d]", op.Index)
	case OpWrite:
		return fmt.Sprintf("list[%d] = %d", op.Index, op.Value)
	case OpSwap:
		return fmt.Sprintf("swap(%d, %d)", op.Index, op.Other)
	default:
		return fmt.Sprintf("unknown(%q)", string(op.Kind))
	}
}

// Recording is the frozen output of one recording run: the starting
// snapshot, the complete operation log, and the values the backing store
// held when the algorithm returned.
//
// A Recording is the single ownership transfer between the recording phase
// and playback. Neither side mutates it afterwards.
type Recording struct {
	Method   string      `json:"method"`
	Snapshot []int       `json:"snapshot"`
	Ops      []Operation `json:"ops"`
	Final    []int       `json:"final"`
}

// Len returns the logical array length of the recording.
func (r Recording) Len() int {
	return len(r.Snapshot)
}

// Validate checks the structural invariants of a recording: snapshot and
// final share a length and every operation is in bounds.
func (r Recording) Validate() error {
	if r.Final != nil && len(r.Final) != len(r.Snapshot) {
		return fmt.Errorf("final length %d does not match snapshot length %d", len(r.Final), len(r.Snapshot))
	}
	n := len(r.Snapshot)
	for i, op := range r.Ops {
		if !op.Kind.Valid() {
			return fmt.Errorf("ops[%d]: unknown kind %q", i, op.Kind)
		}
		if !op.InBounds(n) {
			return fmt.Errorf("ops[%d]: %s out of range for length %d", i, op, n)
		}
	}
	return nil
}

// Canonical converts op to a map suitable for MarshalCanonical.
// Zero-valued Other/Value fields are only emitted for the kinds that use them.
func (op Operation) Canonical() map[string]any {
	m := map[string]any{
		"kind":  string(op.Kind),
		"index": op.Index,
	}
	switch op.Kind {
	case OpWrite:
		m["value"] = op.Value
	case OpSwap:
		m["other"] = op.Other
	}
	return m
}

// CanonicalOps converts an operation log for MarshalCanonical.
func CanonicalOps(ops []Operation) []any {
	out := make([]any, len(ops))
	for i, op := range ops {
		out[i] = op.Canonical()
	}
	return out
}
