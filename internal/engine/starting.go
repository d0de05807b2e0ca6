package engine

import (
	"math/rand/v2"
	"slices"
)

// Starting returns a shuffled permutation of 1..n.
func Starting(n int, rng *rand.Rand) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	rng.Shuffle(n, func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values
}

// Ascending returns 1..n in order.
func Ascending(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

// IsPermutation reports whether values can seed a run of length n: the
// lengths match and the values are a permutation of 0..n-1 or 1..n.
// Duplicates, gaps, negatives and any other base do not qualify.
func IsPermutation(values []int, n int) bool {
	if len(values) != n {
		return false
	}
	if n == 0 {
		return true
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if sorted[0] != 0 && sorted[0] != 1 {
		return false
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}

// newRNG returns the run's random source: fixed by seed when one was given.
func newRNG(c config) *rand.Rand {
	if c.seeded {
		return rand.New(rand.NewPCG(c.seed, c.seed^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
