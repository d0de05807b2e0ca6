package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/sortscope/internal/algo"
	"github.com/roach88/sortscope/internal/engine"
	"github.com/roach88/sortscope/internal/list"
)

// Run records the scenario's run, plays Steps operations, and evaluates
// the assertions against the recording and the playback state.
//
// A contract violation during recording or playback is reported as a
// scenario failure, not returned as an error. Run only returns an error for
// scenarios it cannot start (for example an unknown method, which
// LoadScenario would already have rejected).
//
// Execution flow:
// 1. Resolve the method
// 2. Record the run with the scenario's seed and options
// 3. Play Steps operations
// 4. Evaluate assertions
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// RunWithLogger is Run with engine logging sent to logger.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	method, err := algo.Lookup(scenario.Method)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	opts := []engine.Option{
		engine.WithSeed(scenario.Seed),
		engine.WithAnimatedShuffle(scenario.Shuffle),
		engine.WithReshuffle(scenario.Shuffle),
		engine.WithSweep(scenario.Sweep),
		engine.WithSkipSorted(scenario.SkipSorted),
		engine.WithLogger(logger),
	}
	if scenario.Start != nil {
		opts = append(opts, engine.WithStart(scenario.Start))
	}

	result := NewResult()
	result.Method = string(method)

	var player *engine.Player
	if err := list.Capture(func() {
		player = engine.New(scenario.Length, method, opts...)
	}); err != nil {
		result.AddError(fmt.Sprintf("recording failed: %v", err))
		return result, nil
	}

	rec := player.Recording()
	result.Snapshot = rec.Snapshot
	result.Trace = rec.Ops

	player.Play(scenario.Steps)
	result.Cursor = player.Cursor()

	for _, msg := range EvaluateAssertions(player, scenario.Assertions) {
		result.AddError(msg)
	}

	logger.Debug("scenario finished",
		"scenario", scenario.Name,
		"method", result.Method,
		"ops", len(result.Trace),
		"pass", result.Pass)
	return result, nil
}
