// Package dispatcher defines the dispatch contract shared by live input
// and macro replay. Both paths submit key events to the same entry point;
// the macro engine depends only on this interface.
package dispatcher

import (
	"errors"

	"github.com/dshills/vimbridge/internal/input/key"
)

// Status reports how a dispatched key event was consumed.
type Status int

const (
	// Handled means the event was consumed by a command. A command that
	// legitimately produced no result (no completion candidates, say)
	// still reports Handled with a nil error.
	Handled Status = iota

	// NotHandled means no command claimed the event; the host should
	// process it natively.
	NotHandled
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Handled:
		return "Handled"
	case NotHandled:
		return "NotHandled"
	default:
		return "Status(?)"
	}
}

// Dispatcher accepts a key event and executes the command it maps to.
// A non-nil error means the command failed (a motion past the buffer
// edge, for example); during macro replay the first such error terminates
// the remainder of the run.
type Dispatcher interface {
	Dispatch(ev key.Event) (Status, error)
}

// Func adapts a function to the Dispatcher interface.
type Func func(ev key.Event) (Status, error)

// Dispatch implements Dispatcher.
func (f Func) Dispatch(ev key.Event) (Status, error) {
	return f(ev)
}

// Dispatch errors.
var (
	// ErrNoHandler indicates no command is bound to the event.
	ErrNoHandler = errors.New("dispatcher: no handler for key event")

	// ErrMotionFailed indicates a motion could not move, such as
	// stepping past the start or end of the buffer.
	ErrMotionFailed = errors.New("dispatcher: motion failed")
)
