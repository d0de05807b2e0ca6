package engine

import (
	"io"
	"log/slog"
)

// DefaultRate is the default playback rate in operations per second.
const DefaultRate = 50

// config collects everything New and FromRecording can be tuned with.
type config struct {
	rate       int
	start      []int
	seed       uint64
	seeded     bool
	animate    bool
	reshuffle  bool
	sweep      bool
	skipSorted bool
	window     WindowPolicy
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		rate:   DefaultRate,
		window: DefaultWindow,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a Player.
type Option func(*config)

// WithRate sets the playback rate used by Tick, in operations per second.
// Values below 1 are clamped to 1.
//
// Default: 50 (DefaultRate)
func WithRate(opsPerSecond int) Option {
	return func(c *config) {
		c.rate = max(opsPerSecond, 1)
	}
}

// WithStart resumes from a previous view. If values is not a permutation
// of the expected length (see IsPermutation), New logs a warning and falls
// back to a fresh starting permutation.
func WithStart(values []int) Option {
	return func(c *config) {
		c.start = values
	}
}

// WithSeed fixes the random source used for fresh permutations and
// recorded shuffles. Without it each Player draws from a random seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithAnimatedShuffle makes a fresh start begin sorted and records the
// shuffle into the log, so playback shows the array being scrambled before
// it is sorted.
func WithAnimatedShuffle(enabled bool) Option {
	return func(c *config) {
		c.animate = enabled
	}
}

// WithReshuffle shuffles even when WithStart supplied a valid permutation.
func WithReshuffle(enabled bool) Option {
	return func(c *config) {
		c.reshuffle = enabled
	}
}

// WithSweep appends a recorded left-to-right read pass after the algorithm.
func WithSweep(enabled bool) Option {
	return func(c *config) {
		c.sweep = enabled
	}
}

// WithSkipSorted skips the algorithm when the array is already sorted
// after any shuffle.
func WithSkipSorted(enabled bool) Option {
	return func(c *config) {
		c.skipSorted = enabled
	}
}

// WithWindow overrides the recency window policy.
//
// Default: DefaultWindow
func WithWindow(w WindowPolicy) Option {
	return func(c *config) {
		c.window = w
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
