package host

import (
	"errors"
	"fmt"
)

// Conversion errors.
var (
	// ErrNoMapping indicates the command or key event has no counterpart
	// in the other representation.
	ErrNoMapping = errors.New("host: no mapping")

	// ErrMissingPayload indicates a text-input command arrived without
	// its character payload.
	ErrMissingPayload = errors.New("host: missing character payload")

	// ErrBadPayload indicates a text-input command carried a payload
	// that is not a single character.
	ErrBadPayload = errors.New("host: malformed character payload")
)

// ConversionError describes a failed translation in either direction.
// Callers treat it as "let the host handle this natively"; it never
// escalates beyond the codec boundary.
type ConversionError struct {
	// Op is "decode" or "encode".
	Op string

	// Detail names the command or key event that failed to translate.
	Detail string

	// Err is the underlying reason.
	Err error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("host: %s %s: %v", e.Op, e.Detail, e.Err)
}

// Unwrap returns the underlying reason.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

func decodeErr(cmd Command, err error) *ConversionError {
	return &ConversionError{Op: "decode", Detail: cmd.String(), Err: err}
}

func encodeErr(detail string, err error) *ConversionError {
	return &ConversionError{Op: "encode", Detail: detail, Err: err}
}
