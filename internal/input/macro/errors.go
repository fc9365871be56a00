package macro

import "errors"

// Macro errors. None is fatal; callers surface them as no-op failures.
var (
	// ErrInvalidRegister indicates a name outside a-z, A-Z, 0-9.
	ErrInvalidRegister = errors.New("macro: invalid register")

	// ErrAlreadyRecording indicates StartRecording while a recording is
	// in progress.
	ErrAlreadyRecording = errors.New("macro: already recording")

	// ErrNotRecording indicates StopRecording without an active
	// recording.
	ErrNotRecording = errors.New("macro: not recording")

	// ErrEmptyRegister indicates a run of an absent or empty register.
	ErrEmptyRegister = errors.New("macro: empty register")

	// ErrNoLastMacro indicates RunLast before any macro has run.
	ErrNoLastMacro = errors.New("macro: no macro has been run")
)
