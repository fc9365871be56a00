// Package key defines the abstract key-event model shared by the host
// codec, the change tracker, and the macro engine.
//
// An Event is an immutable value identifying a key press independent of
// the host editor's native command representation. Events compare
// structurally; two events with the same key, rune, and modifiers are the
// same input regardless of how the host delivered them.
//
// The package also provides parsing of key-notation strings ("a", "<Esc>",
// "<C-s>", "Ctrl+S") into events, used by the Lua bindings and tests.
package key
