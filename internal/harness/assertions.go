package harness

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/roach88/sortscope/internal/engine"
	"github.com/roach88/sortscope/internal/list"
)

// weightTolerance absorbs float rounding in 1 - j/(W-1).
const weightTolerance = 1e-9

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Cursor   int    // Playback position the assertion was evaluated at
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s (cursor %d)\n", e.Type, e.Cursor)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions evaluates every assertion against player and returns
// the failure messages. The player is left at the cursor it was given.
//
// A contract violation raised while evaluating an assertion is reported as
// that assertion's failure.
func EvaluateAssertions(player *engine.Player, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		var err error
		if captured := list.Capture(func() { err = evaluate(player, a) }); captured != nil {
			err = captured
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("assertion %d (%s): %v", i, a.Type, err))
		}
	}
	return errs
}

func evaluate(player *engine.Player, a Assertion) error {
	switch a.Type {
	case AssertFinalView:
		return assertFinalView(player, a)
	case AssertView:
		return assertView(player, a)
	case AssertOpCount:
		return assertOpCount(player, a)
	case AssertMinOps:
		return assertMinOps(player, a)
	case AssertOpAt:
		return assertOpAt(player, a)
	case AssertWeights:
		return assertWeights(player, a)
	case AssertSorted:
		return assertSorted(player)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// finalView replays the whole recording on a fresh player, so the
// caller's cursor is untouched.
func finalView(player *engine.Player) ([]int, error) {
	replay, err := engine.FromRecording(player.Recording())
	if err != nil {
		return nil, err
	}
	replay.Play(replay.OpCount())
	return replay.View(), nil
}

func assertFinalView(player *engine.Player, a Assertion) error {
	got, err := finalView(player)
	if err != nil {
		return err
	}
	if !slices.Equal(got, a.Values) {
		return &AssertionError{
			Type:     AssertFinalView,
			Expected: fmt.Sprint(a.Values),
			Actual:   fmt.Sprint(got),
			Cursor:   player.OpCount(),
		}
	}
	return nil
}

func assertView(player *engine.Player, a Assertion) error {
	got := player.View()
	if !slices.Equal(got, a.Values) {
		return &AssertionError{
			Type:     AssertView,
			Expected: fmt.Sprint(a.Values),
			Actual:   fmt.Sprint(got),
			Cursor:   player.Cursor(),
		}
	}
	return nil
}

func assertOpCount(player *engine.Player, a Assertion) error {
	if player.OpCount() != a.Count {
		return &AssertionError{
			Type:     AssertOpCount,
			Expected: fmt.Sprintf("%d operations", a.Count),
			Actual:   fmt.Sprintf("%d operations", player.OpCount()),
			Cursor:   player.Cursor(),
		}
	}
	return nil
}

func assertMinOps(player *engine.Player, a Assertion) error {
	if player.OpCount() < a.Count {
		return &AssertionError{
			Type:     AssertMinOps,
			Expected: fmt.Sprintf("at least %d operations", a.Count),
			Actual:   fmt.Sprintf("%d operations", player.OpCount()),
			Cursor:   player.Cursor(),
		}
	}
	return nil
}

func assertOpAt(player *engine.Player, a Assertion) error {
	ops := player.Recording().Ops
	want := a.Op.Operation()
	if a.Index >= len(ops) {
		return &AssertionError{
			Type:     AssertOpAt,
			Expected: fmt.Sprintf("ops[%d] = %s", a.Index, want),
			Actual:   fmt.Sprintf("log has %d operations", len(ops)),
			Cursor:   player.Cursor(),
		}
	}
	if ops[a.Index] != want {
		return &AssertionError{
			Type:     AssertOpAt,
			Expected: fmt.Sprintf("ops[%d] = %s", a.Index, want),
			Actual:   fmt.Sprintf("ops[%d] = %s", a.Index, ops[a.Index]),
			Cursor:   player.Cursor(),
		}
	}
	return nil
}

func assertWeights(player *engine.Player, a Assertion) error {
	got := player.RecencyWeights()
	want := make(map[int]float64, len(a.Weights))
	for key, w := range a.Weights {
		i, _ := strconv.Atoi(key) // validated at load
		want[i] = w
	}

	match := len(got) == len(want)
	for i, w := range want {
		g, ok := got[i]
		if !ok || math.Abs(g-w) > weightTolerance {
			match = false
		}
	}
	if !match {
		return &AssertionError{
			Type:     AssertWeights,
			Expected: formatWeights(want),
			Actual:   formatWeights(got),
			Cursor:   player.Cursor(),
		}
	}
	return nil
}

func assertSorted(player *engine.Player) error {
	got, err := finalView(player)
	if err != nil {
		return err
	}
	if !slices.IsSorted(got) {
		return &AssertionError{
			Type:     AssertSorted,
			Expected: "ascending final view",
			Actual:   fmt.Sprint(got),
			Cursor:   player.OpCount(),
		}
	}
	return nil
}

// formatWeights renders a weight map with keys in index order.
func formatWeights(weights map[int]float64) string {
	if weights == nil {
		return "none"
	}
	keys := make([]int, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d:%g", k, weights[k])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
