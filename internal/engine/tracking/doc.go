// Package tracking observes raw buffer edits and normalizes them into a
// single semantic TextChange describing the user's current insertion run.
//
// The Tracker is a small synchronous state machine: Disabled, Idle, or
// Accumulating a pending change. Contiguous edits merge into the pending
// change; adjacent but heterogeneous edits chain through Combination
// values; a non-contiguous edit or an unrelated command completes the
// pending change. The completed value is what "repeat last insert"
// replays.
package tracking
