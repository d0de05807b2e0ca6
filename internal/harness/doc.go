// Package harness runs sortscope scenarios: a recorded run plus assertions
// on its log and playback state, with golden trace comparison.
//
// # Scenario Format
//
// Scenarios are YAML (.yaml, .yml) or CUE (.cue) files with the same
// fields:
//
//	name: quick_small
//	description: "Quicksort on a fixed four element start"
//	method: quick
//	start: [3, 1, 4, 2]
//	steps: 2
//	assertions:
//	  - type: view
//	    values: [3, 1, 4, 2]
//	  - type: op_at
//	    index: 2
//	    op: { kind: swap, index: 1, other: 1 }
//	  - type: final_view
//	    values: [1, 2, 3, 4]
//
// Without start, the starting permutation is drawn from seed (default 0),
// so every scenario is deterministic.
//
// # Assertion Types
//
//   - final_view: View after playing the whole log
//   - view: View after playing steps operations
//   - op_count: Exact log length
//   - min_ops: Minimum log length
//   - op_at: Log entry at a position
//   - weights: Recency weights after playing steps operations
//   - sorted: Final view is ascending
//
// # Golden Traces
//
// The golden form of a run is the canonical JSON (RFC 8785) of its
// scenario name, method, snapshot and complete log. Golden files live in
// a golden/ directory beside the scenarios.
package harness
