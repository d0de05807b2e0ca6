// Package engine implements the sortscope playback engine.
//
// A Player is built in two phases that never interleave:
//
//  1. Recording: a starting permutation is loaded into a list.Array and one
//     algorithm runs to completion against it. Every read, write and swap
//     lands in the Array's log in call order.
//  2. Playback: the frozen ir.Recording (snapshot + log) is handed to the
//     Player, which replays it step by step onto its own copy of the
//     snapshot.
//
// ARCHITECTURE:
//
// Logical Time:
// The cursor (number of operations applied) is the only clock. Recency
// weights, state, and completion are all functions of the cursor. Wall
// time only enters through Pacer, which converts frame ticks into a number
// of steps and never reorders anything.
//
// Single Owner:
// A Player is mutated only by its owner. Step, Play, Reset and Tick are
// bounded and synchronous. There is no locking because nothing is shared:
// the recording is copied in, and View returns copies out. Recording may
// happen on another goroutine, as long as the resulting ir.Recording is
// handed over once and not touched again (see FromRecording).
//
// Lifecycle:
// A Player represents exactly one (algorithm, length, starting permutation)
// run. To change any of them, build a new Player; Reset only rewinds.
//
// CRITICAL PATTERNS:
//
// Deterministic Replay:
// Replaying the full log from the snapshot reproduces the algorithm's final
// array exactly, however many views the algorithm sliced. Reset followed by
// Play(OpCount()) always lands on the same view.
//
// Exhaustion Is Not an Error:
// Step and Play past the end are no-ops, so a driver polling on a fixed tick
// does not need to track completion itself.
package engine
