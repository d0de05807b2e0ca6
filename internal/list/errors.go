package list

import (
	"errors"
	"fmt"
)

// ContractCode categorizes capability-contract violations.
type ContractCode string

const (
	// CodeIndexOutOfRange indicates Get/Set/Swap with an index outside [0, Len()).
	CodeIndexOutOfRange ContractCode = "INDEX_OUT_OF_RANGE"

	// CodeInvalidRange indicates a Slice outside the parent's bounds or with start > end.
	CodeInvalidRange ContractCode = "INVALID_RANGE"

	// CodeLogFrozen indicates an access after the log was handed off.
	CodeLogFrozen ContractCode = "LOG_FROZEN"
)

// ContractError describes a capability-contract violation. It is raised with
// panic, never returned, because it signals a defect in the algorithm.
type ContractError struct {
	// Code identifies the violation category.
	Code ContractCode

	// Op is the call that failed: "get", "set", "swap" or "slice".
	Op string

	// Index is the offending local index (index errors only).
	Index int

	// Start and End are the requested local range (range errors only).
	Start, End int

	// Len is the extent of the part the call was made against.
	Len int
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	switch e.Code {
	case CodeIndexOutOfRange:
		return fmt.Sprintf("%s: %s index %d out of range for length %d", e.Code, e.Op, e.Index, e.Len)
	case CodeInvalidRange:
		return fmt.Sprintf("%s: %s [%d, %d) invalid for length %d", e.Code, e.Op, e.Start, e.End, e.Len)
	default:
		return fmt.Sprintf("%s: %s after recording was frozen", e.Code, e.Op)
	}
}

// IsContractError reports whether v (an error or a recovered panic value)
// is a contract violation, and returns it.
func IsContractError(v any) (*ContractError, bool) {
	err, ok := v.(error)
	if !ok {
		return nil, false
	}
	var ce *ContractError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// Capture runs fn and converts a contract-violation panic into an error.
// Any other panic is propagated unchanged.
func Capture(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ce, ok := IsContractError(r); ok {
			err = ce
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

func indexViolation(op string, i, n int) *ContractError {
	return &ContractError{Code: CodeIndexOutOfRange, Op: op, Index: i, Len: n}
}

func rangeViolation(start, end, n int) *ContractError {
	return &ContractError{Code: CodeInvalidRange, Op: "slice", Start: start, End: end, Len: n}
}
