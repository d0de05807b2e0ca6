package algo

import "github.com/roach88/sortscope/internal/list"

// quicksort partitions around the first element, places the pivot, and
// recurses into the two sides through views.
func quicksort(p list.Part) {
	n := p.Len()
	if n <= 1 {
		return
	}

	pivot := p.Get(0)

	// [1, i) holds elements < pivot.
	i := 1
	for j := 1; j < n; j++ {
		if p.Get(j) < pivot {
			p.Swap(i, j)
			i++
		}
	}
	p.Swap(0, i-1)

	quicksort(p.Slice(0, i-1))
	quicksort(p.Slice(i, n))
}

// mergesort sorts both halves through views, then merges them back with
// Set. The merge buffer is algorithm-local state.
func mergesort(p list.Part) {
	n := p.Len()
	if n <= 1 {
		return
	}
	mid := n / 2

	mergesort(p.Slice(0, mid))
	mergesort(p.Slice(mid, n))
	merge(p, mid)
}

func merge(p list.Part, mid int) {
	n := p.Len()
	merged := make([]int, 0, n)
	i, j := 0, mid

	for i < mid && j < n {
		left, right := p.Get(i), p.Get(j)
		if left <= right {
			merged = append(merged, left)
			i++
		} else {
			merged = append(merged, right)
			j++
		}
	}
	for ; i < mid; i++ {
		merged = append(merged, p.Get(i))
	}
	for ; j < n; j++ {
		merged = append(merged, p.Get(j))
	}

	for k, v := range merged {
		p.Set(k, v)
	}
}
