package list

// Part is the capability contract algorithms are written against.
//
// Indices are local to the implementor: for an Array they are global, for a
// View they are offsets from the view's start.
type Part interface {
	// Get returns the value at i and records a read.
	Get(i int) int

	// Set stores v at i and records a write.
	Set(i, v int)

	// Swap exchanges the values at i and j and records a swap.
	Swap(i, j int)

	// Slice returns a view over [start, end) in local coordinates.
	Slice(start, end int) Part

	// Len returns the extent of this part, not of the whole array.
	Len() int
}

var (
	_ Part = (*Array)(nil)
	_ Part = View{}
	_ Part = Plain(nil)
)
