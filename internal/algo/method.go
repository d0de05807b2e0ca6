package algo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/sortscope/internal/list"
)

// Func is an algorithm written purely against the capability contract.
type Func func(p list.Part)

// Method names one sorting strategy.
type Method string

// Known methods, in display order.
const (
	Quick     Method = "quick"
	Merge     Method = "merge"
	Bubble    Method = "bubble"
	Selection Method = "selection"
	Insertion Method = "insertion"
	Radix     Method = "radix"
	Counting  Method = "counting"
	Bogo      Method = "bogo"
)

// ErrUnknownMethod is returned by Lookup for names outside the registry.
var ErrUnknownMethod = errors.New("unknown method")

type entry struct {
	method      Method
	fn          Func
	description string
}

// registry is ordered; Methods and Index follow declaration order.
var registry = []entry{
	{Quick, quicksort, "quicksort, first element as pivot, recursing through views"},
	{Merge, mergesort, "top-down merge sort, recursing through views"},
	{Bubble, bubblesort, "adjacent compare-and-swap passes"},
	{Selection, selectionsort, "repeatedly swap the minimum of the unsorted suffix into place"},
	{Insertion, insertionsort, "swap each element left until it is in order"},
	{Radix, radixsort, "least-significant-bit radix sort, writing through Set"},
	{Counting, countingsort, "count occurrences, then rewrite the array in order"},
	{Bogo, bogosort, "shuffle until sorted, bounded"},
}

// Methods returns every known method in display order.
func Methods() []Method {
	out := make([]Method, len(registry))
	for i, e := range registry {
		out[i] = e.method
	}
	return out
}

// Lookup resolves a method name, ignoring case and surrounding space.
func Lookup(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	if m.Valid() {
		return m, nil
	}
	return "", fmt.Errorf("%w %q (known: %s)", ErrUnknownMethod, name, strings.Join(names(), ", "))
}

// Valid reports whether m is in the registry.
func (m Method) Valid() bool {
	return m.Index() >= 0
}

// Index returns m's position in display order, or -1.
func (m Method) Index() int {
	for i, e := range registry {
		if e.method == m {
			return i
		}
	}
	return -1
}

// Func returns the algorithm for m. Panics for an unknown method; resolve
// names with Lookup first.
func (m Method) Func() Func {
	i := m.Index()
	if i < 0 {
		panic(fmt.Sprintf("algo: unknown method %q", string(m)))
	}
	return registry[i].fn
}

// Description returns a one-line summary of m.
func (m Method) Description() string {
	if i := m.Index(); i >= 0 {
		return registry[i].description
	}
	return ""
}

// String renders m with its one-based position, e.g. "quick (F1)".
func (m Method) String() string {
	if i := m.Index(); i >= 0 {
		return fmt.Sprintf("%s (F%d)", string(m), i+1)
	}
	return string(m)
}

func names() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = string(e.method)
	}
	return out
}
