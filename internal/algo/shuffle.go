package algo

import (
	"math/rand/v2"

	"github.com/roach88/sortscope/internal/list"
)

// bogoBudget bounds the total swaps bogosort may spend: it gets
// bogoBudget/len shuffle rounds.
const bogoBudget = 1_000_000

// bogoSeed fixes bogosort's shuffles so a recording is reproducible.
const bogoSeed = 0x5eed

// Shuffle performs a Fisher-Yates shuffle through Swap, so every step of the
// shuffle is recorded.
func Shuffle(p list.Part, rng *rand.Rand) {
	for i := p.Len() - 1; i > 0; i-- {
		p.Swap(i, rng.IntN(i+1))
	}
}

// Sweep reads every element left to right. Appended after a sort it plays
// back as a final pass over the finished array.
func Sweep(p list.Part) {
	for i := 0; i < p.Len(); i++ {
		p.Get(i)
	}
}

// IsSortedVisible reports whether p is ascending, recording the reads it
// takes to find out. It stops at the first inversion.
func IsSortedVisible(p list.Part) bool {
	for i := 0; i+1 < p.Len(); i++ {
		if p.Get(i) > p.Get(i+1) {
			return false
		}
	}
	return true
}

func bogosort(p list.Part) {
	n := p.Len()
	if n <= 1 {
		return
	}
	rng := rand.New(rand.NewPCG(bogoSeed, uint64(n)))
	for round := 0; round < bogoBudget/n && !IsSortedVisible(p); round++ {
		Shuffle(p, rng)
	}
}
