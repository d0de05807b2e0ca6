package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/sortscope/internal/testutil"
)

func TestIsPermutation(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		n      int
		want   bool
	}{
		{"one based", []int{3, 1, 2}, 3, true},
		{"zero based", []int{0, 2, 1}, 3, true},
		{"other base", []int{7, 5, 6}, 3, false},
		{"negative", []int{1, -1, 0}, 3, false},
		{"huge", []int{1000000000, 1000000001}, 2, false},
		{"single zero", []int{0}, 1, true},
		{"empty", nil, 0, true},
		{"duplicate", []int{1, 1, 2}, 3, false},
		{"gap", []int{1, 2, 4}, 3, false},
		{"wrong length", []int{1, 2}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPermutation(tt.values, tt.n))
		})
	}
}

func TestIsPermutation_DoesNotMutate(t *testing.T) {
	values := []int{3, 1, 2}
	IsPermutation(values, 3)
	assert.Equal(t, []int{3, 1, 2}, values)
}

func TestStarting(t *testing.T) {
	got := Starting(50, testutil.RNG(1))

	assert.Len(t, got, 50)
	assert.True(t, IsPermutation(got, 50))

	sorted := slices.Clone(got)
	slices.Sort(sorted)
	assert.Equal(t, Ascending(50), sorted, "values are 1..n")

	assert.Equal(t, got, Starting(50, testutil.RNG(1)), "same seed, same permutation")
	assert.Empty(t, Starting(0, testutil.RNG(1)))
}
