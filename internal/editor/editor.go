package editor

import (
	"errors"

	"github.com/dshills/vimbridge/internal/engine/history"
	"github.com/dshills/vimbridge/internal/engine/tracking"
	"github.com/dshills/vimbridge/internal/input/macro"
)

var errStaleOperation = errors.New("editor: operation out of range")

// Mode is the editor's input mode.
type Mode int

const (
	// ModeNormal interprets keys as commands.
	ModeNormal Mode = iota

	// ModeInsert inserts typed characters into the buffer.
	ModeInsert
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	default:
		return "mode(?)"
	}
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger attaches a trace logger to the dispatch path.
func WithLogger(l *Logger) Option {
	return func(e *Editor) {
		e.log = l
	}
}

// WithNormalizeBlanks sets the change tracker's blank-normalization
// transform.
func WithNormalizeBlanks(fn tracking.NormalizeFunc) Option {
	return func(e *Editor) {
		e.normalize = fn
	}
}

// WithHistoryLimit bounds the undo stack.
func WithHistoryLimit(n int) Option {
	return func(e *Editor) {
		e.historyLimit = n
	}
}

// WithMaxCount caps the count prefix accepted for a single command.
func WithMaxCount(n int) Option {
	return func(e *Editor) {
		e.maxCount = n
	}
}

// WithTracking turns change tracking on or off for the session. With
// tracking off the repeat command has nothing to replay.
func WithTracking(enabled bool) Option {
	return func(e *Editor) {
		e.trackingOff = !enabled
	}
}

// Editor is one editing session: a buffer, a caret, a mode, and the
// command-layer subsystems wired together. It implements
// dispatcher.Dispatcher; macro replay re-enters Dispatch.
type Editor struct {
	text  string
	caret int
	mode  Mode

	overtype bool

	tracker  *tracking.Tracker
	history  *history.History
	recorder *macro.Recorder
	player   *macro.Player

	// lastChange is the most recently completed insertion run, the
	// value the repeat command replays.
	lastChange    tracking.TextChange
	hasLastChange bool

	// insertTxn groups one insertion run into a single undo unit.
	insertTxn *history.Transaction

	// Pending normal-mode state.
	count          int  // accumulated count prefix, 0 = none
	pendingRecord  bool // q pressed, awaiting register name
	pendingRun     bool // @ pressed, awaiting register name
	pendingReplace bool // r pressed, awaiting replacement character

	normalize    tracking.NormalizeFunc
	historyLimit int
	maxCount     int
	trackingOff  bool
	log          *Logger
}

// New creates an editor session with the given initial buffer text.
func New(text string, opts ...Option) *Editor {
	e := &Editor{text: text}
	for _, opt := range opts {
		opt(e)
	}

	trackerOpts := []tracking.TrackerOption{
		tracking.WithChangeCompleted(func(c tracking.TextChange) {
			e.lastChange = c
			e.hasLastChange = true
		}),
	}
	if e.normalize != nil {
		trackerOpts = append(trackerOpts, tracking.WithNormalizeBlanks(e.normalize))
	}
	e.tracker = tracking.NewTracker(trackerOpts...)

	e.history = history.New(e.historyLimit)
	e.recorder = macro.NewRecorder()
	e.player = macro.NewPlayer(e.recorder, e, undoManager{e.history})
	return e
}

// undoManager adapts history.History to the macro engine's interface.
type undoManager struct {
	h *history.History
}

func (u undoManager) Begin(name string) macro.Transaction {
	return u.h.Begin(name)
}

// SetMaxCount updates the count-prefix cap, for configuration reloads.
// Call it from the dispatching goroutine.
func (e *Editor) SetMaxCount(n int) {
	e.maxCount = n
}

// Mode returns the current input mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Overtype reports whether overtype mode is active.
func (e *Editor) Overtype() bool {
	return e.overtype
}

// Recorder exposes the session's macro registers.
func (e *Editor) Recorder() *macro.Recorder {
	return e.recorder
}

// Player exposes the session's macro player.
func (e *Editor) Player() *macro.Player {
	return e.player
}

// History exposes the session's undo history.
func (e *Editor) History() *history.History {
	return e.history
}

// Tracker exposes the session's change tracker.
func (e *Editor) Tracker() *tracking.Tracker {
	return e.tracker
}

// LastChange returns the most recently completed insertion run.
func (e *Editor) LastChange() (tracking.TextChange, bool) {
	return e.lastChange, e.hasLastChange
}

// applyEdit performs a buffer mutation through the full pipeline: the
// splice itself, history recording, and change tracking.
func (e *Editor) applyEdit(start, length int, insert string, caretAfter int) {
	caretBefore := e.caret
	deleted := e.splice(start, length, insert)

	e.history.Record(history.Operation{
		Start:       start,
		Deleted:     deleted,
		Inserted:    insert,
		CaretBefore: caretBefore,
		CaretAfter:  caretAfter,
	})
	e.tracker.Note(tracking.Edit{
		Start:       start,
		Deleted:     deleted,
		Inserted:    insert,
		CaretBefore: caretBefore,
	})

	e.caret = caretAfter
}

// takeCount consumes the pending count prefix, defaulting to 1.
func (e *Editor) takeCount() int {
	n := e.count
	e.count = 0
	if n < 1 {
		return 1
	}
	if e.maxCount > 0 && n > e.maxCount {
		return e.maxCount
	}
	return n
}
