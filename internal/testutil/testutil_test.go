package testutil

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_StartsAtEpoch(t *testing.T) {
	clock := NewFakeClock()
	assert.Equal(t, Epoch, clock.Now())
}

func TestFakeClock_Advance(t *testing.T) {
	clock := NewFakeClock()

	now := clock.Advance(250 * time.Millisecond)
	assert.Equal(t, Epoch.Add(250*time.Millisecond), now)
	assert.Equal(t, now, clock.Now(), "Now does not move on its own")

	clock.Reset()
	assert.Equal(t, Epoch, clock.Now())
}

func TestFakeClock_ThreadSafe(t *testing.T) {
	clock := NewFakeClock()
	const goroutines = 50

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clock.Advance(time.Millisecond)
		}()
	}
	wg.Wait()

	assert.Equal(t, Epoch.Add(goroutines*time.Millisecond), clock.Now())
}

func TestFixedTokenGenerator(t *testing.T) {
	gen := NewFixedTokenGenerator("run-123")
	assert.Equal(t, "run-123", gen.Generate())
	assert.Equal(t, "run-123", gen.Generate())

	assert.Equal(t, "test-run-default", NewFixedTokenGenerator("").Generate())
}

func TestPerm_Deterministic(t *testing.T) {
	a := Perm(7, 32)
	b := Perm(7, 32)
	assert.Equal(t, a, b)

	sorted := slices.Clone(a)
	slices.Sort(sorted)
	assert.Equal(t, Sorted(32), sorted, "Perm is a permutation of 1..n")
}

func TestPerm_SeedMatters(t *testing.T) {
	assert.NotEqual(t, Perm(1, 32), Perm(2, 32))
}
