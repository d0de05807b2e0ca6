// Package algo holds the sorting strategies sortscope can record.
//
// Every strategy is a plain function over list.Part. It may read, write,
// swap and slice, and nothing else: no I/O, no retained handles, no state
// beyond its own locals. Adding a strategy means adding a Method constant,
// a function, and a registry entry; the recording and playback machinery
// never changes.
package algo
