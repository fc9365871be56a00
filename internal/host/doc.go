// Package host translates between the host editor's native command
// representation and the abstract key-event model in internal/input/key.
//
// The host delivers commands as (group, id, payload, modifiers) tuples.
// Decode maps those onto key events; Encode produces the native command a
// key event corresponds to. The mapping is many-to-one on the way in (two
// distinct escape command ids both decode to the Escape key) and
// one-to-one on the way out.
//
// Translation failures are reported as ConversionError values so callers
// can fall back to the host's own handling of the command.
package host
