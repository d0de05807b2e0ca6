// Package store provides SQLite-backed durable storage for sortscope
// recordings.
//
// A recording is stored as one row in recordings (snapshot, final values
// and log metadata) plus one row per logged operation in operations. Rows
// are append-only; a recording is never updated once written.
//
// # Critical Patterns
//
// Content-Addressed Identity
//   - Recording IDs come from ir.RecordingID: SHA-256 over the canonical
//     JSON of method, snapshot and log
//   - Writing the same run twice is a no-op
//
// Logical Time
//   - operations.seq is the position in the log
//   - recordings.seq is a store-wide write counter
//   - All ordering uses seq, NEVER timestamps
//
// Atomic Writes
//   - A recording and all of its operations commit in one transaction, so a
//     reader never sees a partial log
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
