package algo

import "github.com/roach88/sortscope/internal/list"

func bubblesort(p list.Part) {
	for end := p.Len() - 1; end > 0; end-- {
		for i := 0; i < end; i++ {
			if p.Get(i) > p.Get(i+1) {
				p.Swap(i, i+1)
			}
		}
	}
}

func selectionsort(p list.Part) {
	n := p.Len()
	for i := 0; i < n-1; i++ {
		lowest := i
		for j := i + 1; j < n; j++ {
			if p.Get(j) < p.Get(lowest) {
				lowest = j
			}
		}
		if lowest != i {
			p.Swap(i, lowest)
		}
	}
}

func insertionsort(p list.Part) {
	for i := 1; i < p.Len(); i++ {
		for j := i; j > 0 && p.Get(j-1) > p.Get(j); j-- {
			p.Swap(j-1, j)
		}
	}
}
