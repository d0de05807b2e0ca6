// Package ir provides the canonical record types shared by every sortscope
// package: the Operation log entry and the Recording handed from the
// recording phase to playback.
//
// This package contains type definitions and their serialization only. All
// other internal packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Operation indices are always global (root array coordinates)
//   - Log position is the only notion of time; no wall-clock timestamps
//   - All JSON tags use snake_case
//   - NO float types in canonical JSON
package ir
