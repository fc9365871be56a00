// Package editor implements a small modal editor core over a plain text
// buffer. It is the dispatch entry point both live input and macro
// replay feed into: normal-mode commands (motions, counts, case toggle,
// recording and running macros, undo, repeat), insert-mode text entry,
// change tracking for repeat-last-insert, and grouped undo.
//
// The buffer model is deliberately simple: one string with byte-offset
// addressing and a caret. The host owns real rendering and storage; this
// core exists so the command layer has something concrete to act on.
package editor
