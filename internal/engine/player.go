package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/roach88/sortscope/internal/algo"
	"github.com/roach88/sortscope/internal/ir"
	"github.com/roach88/sortscope/internal/list"
)

// Player replays one recorded sorting run.
//
// The view starts as the recording's snapshot and advances one logged
// operation per Step. Reads leave the view unchanged; writes and swaps
// apply exactly as the algorithm performed them.
type Player struct {
	rec    ir.Recording
	cursor int
	view   []int

	rate     int
	pacer    *Pacer
	lastTick time.Time

	window WindowPolicy
	logger *slog.Logger
}

// New records a fresh run of method over length elements and returns a
// Player positioned at its start.
//
// The starting permutation is, in order of preference:
//   - the WithStart values, when they are a permutation of length
//   - 1..length, when WithAnimatedShuffle is set (the shuffle is recorded)
//   - a random permutation of 1..length
//
// Panics if method is not registered; callers validate names with
// algo.Lookup first.
func New(length int, method algo.Method, opts ...Option) *Player {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	fn := method.Func()
	rng := newRNG(c)

	base, resumed := resolveStart(c, length, rng)
	arr := list.New(base)

	if c.animate && (!resumed || c.reshuffle) {
		algo.Shuffle(arr, rng)
	}

	switch {
	case c.skipSorted && arr.Sorted():
		c.logger.Debug("skipping sort, array already sorted", "method", string(method), "length", length)
	default:
		fn(arr)
	}

	if c.sweep {
		algo.Sweep(arr)
	}

	rec := arr.Recording(string(method))
	c.logger.Debug("recorded run",
		"method", string(method),
		"length", length,
		"ops", len(rec.Ops),
		"resumed", resumed)

	return newPlayer(rec, c)
}

// FromRecording returns a Player over an existing recording, typically one
// loaded from the store. The recording is copied; the caller keeps
// ownership of rec.
//
// Returns an error if the recording fails ir.Recording.Validate.
func FromRecording(rec ir.Recording, opts ...Option) (*Player, error) {
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recording: %w", err)
	}

	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	owned := ir.Recording{
		Method:   rec.Method,
		Snapshot: slices.Clone(rec.Snapshot),
		Ops:      slices.Clone(rec.Ops),
		Final:    slices.Clone(rec.Final),
	}
	return newPlayer(owned, c), nil
}

func newPlayer(rec ir.Recording, c config) *Player {
	return &Player{
		rec:    rec,
		view:   slices.Clone(rec.Snapshot),
		rate:   c.rate,
		window: c.window,
		logger: c.logger,
	}
}

// resolveStart picks the base permutation. resumed reports whether the
// WithStart values were accepted.
func resolveStart(c config, length int, rng *rand.Rand) ([]int, bool) {
	if c.start != nil {
		if IsPermutation(c.start, length) {
			return slices.Clone(c.start), true
		}
		c.logger.Warn("start is not a permutation, using a fresh one",
			"length", length,
			"start_len", len(c.start))
	}

	if c.animate {
		return Ascending(length), false
	}
	return Starting(length, rng), false
}

// Reset rewinds to the snapshot. The log is kept; a fresh run needs a new
// Player.
func (p *Player) Reset() {
	p.cursor = 0
	copy(p.view, p.rec.Snapshot)
	p.pacer = nil
}

// Step applies the next operation. It returns false, changing nothing,
// once the log is exhausted.
func (p *Player) Step() bool {
	if p.cursor >= len(p.rec.Ops) {
		return false
	}
	p.rec.Ops[p.cursor].Apply(p.view)
	p.cursor++
	return true
}

// Play applies up to n operations and returns how many were applied.
// Non-positive n is a no-op.
func (p *Player) Play(n int) int {
	applied := 0
	for applied < n && p.Step() {
		applied++
	}
	return applied
}

// Tick plays however many operations the rate allows since the previous
// Tick and returns how many were applied. The first Tick after New or
// Reset only starts the clock.
func (p *Player) Tick(now time.Time) int {
	p.lastTick = now
	if p.pacer == nil {
		p.pacer = NewPacer(p.rate, now)
		return 0
	}
	if p.IsComplete() {
		return 0
	}
	return p.Play(p.pacer.Due(now))
}

// Rate returns the playback rate in operations per second.
func (p *Player) Rate() int {
	return p.rate
}

// SetRate changes the playback rate. Values below 1 are clamped to 1.
func (p *Player) SetRate(opsPerSecond int) {
	p.rate = max(opsPerSecond, 1)
	if p.pacer != nil {
		p.pacer.SetRate(p.rate, p.lastTick)
	}
}

// View returns a copy of the current values.
func (p *Player) View() []int {
	return slices.Clone(p.view)
}

// RecencyWeights returns highlight weights for the current cursor.
// See the package-level RecencyWeights.
func (p *Player) RecencyWeights() map[int]float64 {
	return RecencyWeights(p.rec.Ops, p.cursor, len(p.view), p.window)
}

// Len returns the array length.
func (p *Player) Len() int {
	return len(p.view)
}

// IsComplete reports whether every operation has been applied.
func (p *Player) IsComplete() bool {
	return p.cursor >= len(p.rec.Ops)
}

// Cursor returns the number of operations applied so far.
func (p *Player) Cursor() int {
	return p.cursor
}

// OpCount returns the length of the log.
func (p *Player) OpCount() int {
	return len(p.rec.Ops)
}

// State returns the playback state derived from the cursor.
func (p *Player) State() State {
	switch {
	case p.IsComplete():
		return Complete
	case p.cursor == 0:
		return Ready
	default:
		return InProgress
	}
}

// Method returns the name of the recorded algorithm.
func (p *Player) Method() string {
	return p.rec.Method
}

// Recording returns a copy of the recording being played.
func (p *Player) Recording() ir.Recording {
	return ir.Recording{
		Method:   p.rec.Method,
		Snapshot: slices.Clone(p.rec.Snapshot),
		Ops:      slices.Clone(p.rec.Ops),
		Final:    slices.Clone(p.rec.Final),
	}
}

// LastOp returns the most recently applied operation.
func (p *Player) LastOp() (ir.Operation, bool) {
	if p.cursor == 0 {
		return ir.Operation{}, false
	}
	return p.rec.Ops[p.cursor-1], true
}
