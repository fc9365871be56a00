// Package macro records and replays key-event sequences.
//
// The Recorder owns the session's register map: named slots holding
// recorded sequences. Lowercase register names overwrite on update,
// uppercase names append to their lowercase counterpart. The Player
// replays a register's sequence through the normal dispatch entry point,
// count times, inside one undo transaction; the first dispatch error
// terminates the remainder of the run while keeping edits already
// applied. Recursive invocation (a macro whose body runs a macro) is
// ordinary dispatch re-entry and shares the outer undo transaction.
package macro
