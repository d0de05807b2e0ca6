package engine

import "github.com/roach88/sortscope/internal/ir"

// WindowPolicy sizes the recency window: how many of the most recent log
// entries contribute highlight weight.
//
// The window is Len/Divisor entries, at least Min, and never more than the
// cursor. Both constants are visual tuning, not correctness constraints.
type WindowPolicy struct {
	Divisor int
	Min     int
}

// DefaultWindow looks back over a twentieth of the array length.
var DefaultWindow = WindowPolicy{Divisor: 20, Min: 1}

// Size returns the window size for an array of length n at cursor.
func (w WindowPolicy) Size(n, cursor int) int {
	divisor := w.Divisor
	if divisor <= 0 {
		divisor = DefaultWindow.Divisor
	}
	size := max(n/divisor, w.Min, 1)
	return min(size, cursor)
}

// RecencyWeights maps indices to how recently they were read, as of cursor.
//
// The window covers the Size(n, cursor) entries before cursor. The j-th most
// recent entry (j = 0 is the latest) weighs 1 - j/(size-1), or 1 when the
// window holds a single entry. Only reads count. An index read more than
// once keeps its highest weight. Every weight lies in [0, 1].
//
// Returns nil when cursor is 0 or at the end of the log. Otherwise the map
// is non-nil, and empty if the window held no reads.
func RecencyWeights(ops []ir.Operation, cursor, n int, w WindowPolicy) map[int]float64 {
	if cursor <= 0 || cursor >= len(ops) {
		return nil
	}

	size := w.Size(n, cursor)
	weights := make(map[int]float64, size)
	for j := 0; j < size; j++ {
		op := ops[cursor-1-j]
		if op.Kind != ir.OpRead {
			continue
		}

		weight := 1.0
		if size > 1 {
			weight = 1.0 - float64(j)/float64(size-1)
		}
		if prev, ok := weights[op.Index]; !ok || weight > prev {
			weights[op.Index] = weight
		}
	}
	return weights
}
