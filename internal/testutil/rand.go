package testutil

import "math/rand/v2"

// RNG returns a PCG-backed generator fixed by seed.
func RNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Perm returns a deterministic permutation of 1..n for seed.
func Perm(seed uint64, n int) []int {
	p := RNG(seed).Perm(n)
	for i := range p {
		p[i]++
	}
	return p
}

// Sorted returns 1..n in order.
func Sorted(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
