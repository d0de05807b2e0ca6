// Package list implements the instrumented array that sorting algorithms run
// against.
//
// An Array owns the values and an append-only operation log. Every Get, Set
// and Swap appends exactly one ir.Operation in call order. A View is a
// range-restricted window onto the same Array, used by divide-and-conquer
// algorithms to recurse into partitions:
//
//	left := p.Slice(0, mid)
//	right := p.Slice(mid, p.Len())
//
// Views hold the root Array and absolute bounds, so slicing a view adds its
// start once and translating a local index is a single addition regardless
// of recursion depth. Operations recorded through any view land in the root
// log with global indices.
//
// # Contract Violations
//
// Out-of-range indices and invalid sub-ranges are defects in the calling
// algorithm, not runtime conditions. They panic with a *ContractError rather
// than clamping, since a clamped access would make the log lie about what
// the algorithm did. Use Capture to turn such panics into errors at a
// trust boundary.
//
// # Lifecycle
//
// An Array records until Recording is called. Recording freezes the log and
// hands back an ir.Recording; any later access through the Array or one of
// its views panics with CodeLogFrozen.
//
// An Array is not safe for concurrent use. Run one algorithm per Array.
package list
