package algo

import (
	"math/bits"

	"github.com/roach88/sortscope/internal/list"
)

// radixsort is an LSD binary radix sort. A first read pass finds the
// largest value to bound the number of bit passes. Values must be
// non-negative.
func radixsort(p list.Part) {
	n := p.Len()
	if n <= 1 {
		return
	}

	highest := 0
	for i := 0; i < n; i++ {
		highest = max(highest, p.Get(i))
	}

	for bit := 0; bit < bits.Len(uint(highest)); bit++ {
		sortByBit(p, bit)
	}
}

// sortByBit stably partitions p into values with bit clear, then set.
func sortByBit(p list.Part, bit int) {
	var zeros, ones []int
	for i := 0; i < p.Len(); i++ {
		v := p.Get(i)
		if (v>>bit)&1 == 0 {
			zeros = append(zeros, v)
		} else {
			ones = append(ones, v)
		}
	}
	for i, v := range zeros {
		p.Set(i, v)
	}
	for i, v := range ones {
		p.Set(len(zeros)+i, v)
	}
}

// countingsort tallies each value and rewrites the array in order.
// Values must be non-negative.
func countingsort(p list.Part) {
	n := p.Len()
	if n <= 1 {
		return
	}

	values := make([]int, n)
	highest := 0
	for i := 0; i < n; i++ {
		values[i] = p.Get(i)
		highest = max(highest, values[i])
	}

	counts := make([]int, highest+1)
	for _, v := range values {
		counts[v]++
	}

	i := 0
	for v, c := range counts {
		for ; c > 0; c-- {
			p.Set(i, v)
			i++
		}
	}
}
