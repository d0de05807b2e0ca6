package list

import (
	"slices"

	"github.com/roach88/sortscope/internal/ir"
)

// Array is the backing store: the single owned value array plus the shared
// operation log.
type Array struct {
	snapshot []int
	values   []int
	ops      []ir.Operation
	frozen   bool
}

// New creates an Array holding a copy of values. The copy is also kept as
// the starting snapshot.
func New(values []int) *Array {
	return &Array{
		snapshot: slices.Clone(values),
		values:   slices.Clone(values),
	}
}

// Get returns the value at i and records Read(i).
func (a *Array) Get(i int) int {
	a.check("get", i)
	a.record(ir.Read(i))
	return a.values[i]
}

// Set stores v at i and records Write(i, v).
func (a *Array) Set(i, v int) {
	a.check("set", i)
	a.record(ir.Write(i, v))
	a.values[i] = v
}

// Swap exchanges the values at i and j and records Swap(i, j).
func (a *Array) Swap(i, j int) {
	a.check("swap", i)
	a.check("swap", j)
	a.record(ir.Swap(i, j))
	a.values[i], a.values[j] = a.values[j], a.values[i]
}

// Slice returns a view over [start, end).
func (a *Array) Slice(start, end int) Part {
	a.checkOpen("slice")
	if start < 0 || start > end || end > len(a.values) {
		panic(rangeViolation(start, end, len(a.values)))
	}
	return View{root: a, start: start, end: end}
}

// Len returns the length of the whole array.
func (a *Array) Len() int {
	return len(a.values)
}

// Values returns a copy of the current values. It is not recorded.
func (a *Array) Values() []int {
	return slices.Clone(a.values)
}

// Snapshot returns a copy of the values the Array was created with.
func (a *Array) Snapshot() []int {
	return slices.Clone(a.snapshot)
}

// Ops returns a copy of the log recorded so far.
func (a *Array) Ops() []ir.Operation {
	return slices.Clone(a.ops)
}

// OpCount returns the number of operations recorded so far.
func (a *Array) OpCount() int {
	return len(a.ops)
}

// Sorted reports whether the current values are in ascending order.
// It is not recorded.
func (a *Array) Sorted() bool {
	return slices.IsSorted(a.values)
}

// Frozen reports whether Recording has been called.
func (a *Array) Frozen() bool {
	return a.frozen
}

// Recording freezes the log and returns the frozen run. The Array (and any
// view over it) panics on further access.
func (a *Array) Recording(method string) ir.Recording {
	a.frozen = true
	return ir.Recording{
		Method:   method,
		Snapshot: slices.Clone(a.snapshot),
		Ops:      a.ops,
		Final:    slices.Clone(a.values),
	}
}

// check validates a global index against the whole array.
func (a *Array) check(op string, i int) {
	a.checkOpen(op)
	if i < 0 || i >= len(a.values) {
		panic(indexViolation(op, i, len(a.values)))
	}
}

// checkOpen panics once the log has been handed off.
func (a *Array) checkOpen(op string) {
	if a.frozen {
		panic(&ContractError{Code: CodeLogFrozen, Op: op})
	}
}

func (a *Array) record(op ir.Operation) {
	a.ops = append(a.ops, op)
}
