package editor

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/vimbridge/internal/dispatcher"
	"github.com/dshills/vimbridge/internal/engine/tracking"
	"github.com/dshills/vimbridge/internal/input/key"
	"github.com/dshills/vimbridge/internal/input/macro"
)

// Dispatch is the single entry point for key events, live or replayed.
func (e *Editor) Dispatch(ev key.Event) (dispatcher.Status, error) {
	if e.log != nil {
		e.log.Debug("dispatch %s mode=%s", ev.VimString(), e.mode)
	}

	// The q that terminates a recording is not part of the recording.
	if e.mode == ModeNormal && e.stopsRecording(ev) {
		_, err := e.recorder.StopRecording()
		return dispatcher.Handled, err
	}
	// A recording captures the keys that invoke a macro, never the keys
	// the replay produces.
	if !e.player.IsReplaying() {
		e.recorder.Record(ev)
	}

	if e.mode == ModeInsert {
		return e.dispatchInsert(ev)
	}
	return e.dispatchNormal(ev)
}

// stopsRecording reports whether ev is the plain q that ends the active
// recording.
func (e *Editor) stopsRecording(ev key.Event) bool {
	return e.recorder.IsRecording() &&
		!e.pendingRecord && !e.pendingRun && !e.pendingReplace &&
		ev.Equals(key.NewRuneEvent('q', key.ModNone))
}

func (e *Editor) dispatchNormal(ev key.Event) (dispatcher.Status, error) {
	switch {
	case e.pendingRecord:
		e.pendingRecord = false
		if ev.IsEscape() {
			return dispatcher.Handled, nil
		}
		if !ev.IsRune() {
			return dispatcher.Handled, macro.ErrInvalidRegister
		}
		return dispatcher.Handled, e.recorder.StartRecording(ev.Rune)

	case e.pendingRun:
		e.pendingRun = false
		if ev.IsEscape() {
			e.count = 0
			return dispatcher.Handled, nil
		}
		count := e.takeCount()
		if !ev.IsRune() {
			return dispatcher.Handled, macro.ErrInvalidRegister
		}
		if ev.Rune == '@' {
			return dispatcher.Handled, e.player.RunLast()
		}
		return dispatcher.Handled, e.player.Run(ev.Rune, count)

	case e.pendingReplace:
		e.pendingReplace = false
		if !ev.IsChar() {
			return dispatcher.Handled, nil
		}
		return dispatcher.Handled, e.replaceChars(ev.Rune, e.takeCount())
	}

	// Count prefix: 1-9 always, 0 only once a count has started.
	if ev.IsRune() && ev.Modifiers == key.ModNone {
		if ev.Rune >= '1' && ev.Rune <= '9' || (ev.Rune == '0' && e.count > 0) {
			e.count = e.count*10 + int(ev.Rune-'0')
			return dispatcher.Handled, nil
		}
	}

	switch ev.Key {
	case key.KeyEscape:
		e.count = 0
		return dispatcher.Handled, nil
	case key.KeyLeft:
		return dispatcher.Handled, e.moveLeft(e.takeCount())
	case key.KeyRight:
		return dispatcher.Handled, e.moveRight(e.takeCount())
	case key.KeyUp:
		return dispatcher.Handled, e.moveUp(e.takeCount())
	case key.KeyDown:
		return dispatcher.Handled, e.moveDown(e.takeCount())
	case key.KeyHome:
		e.caret = e.lineStart(e.caret)
		return dispatcher.Handled, nil
	case key.KeyEnd:
		e.caret = e.lineEnd(e.caret)
		return dispatcher.Handled, nil
	case key.KeyInsert:
		e.overtype = !e.overtype
		return dispatcher.Handled, nil
	}

	if !ev.IsRune() || ev.IsModified() {
		return dispatcher.NotHandled, nil
	}

	switch ev.Rune {
	case 'i':
		e.enterInsert()
	case 'a':
		if e.caret < e.lineEnd(e.caret) {
			_, size := e.runeAt(e.caret)
			e.caret += size
		}
		e.enterInsert()
	case 'h':
		return dispatcher.Handled, e.moveLeft(e.takeCount())
	case 'l':
		return dispatcher.Handled, e.moveRight(e.takeCount())
	case 'k':
		return dispatcher.Handled, e.moveUp(e.takeCount())
	case 'j':
		return dispatcher.Handled, e.moveDown(e.takeCount())
	case '0':
		e.caret = e.lineStart(e.caret)
	case '$':
		e.caret = e.lineEnd(e.caret)
	case 'x':
		return dispatcher.Handled, e.deleteRight(e.takeCount())
	case '~':
		return dispatcher.Handled, e.toggleCase(e.takeCount())
	case 'r':
		e.pendingReplace = true
	case 'u':
		e.count = 0
		return dispatcher.Handled, e.history.Undo(e)
	case '.':
		return dispatcher.Handled, e.repeatLastChange()
	case 'q':
		e.pendingRecord = true
	case '@':
		e.pendingRun = true
	default:
		return dispatcher.NotHandled, nil
	}

	return dispatcher.Handled, nil
}

func (e *Editor) dispatchInsert(ev key.Event) (dispatcher.Status, error) {
	switch ev.Key {
	case key.KeyEscape:
		e.leaveInsert()
		return dispatcher.Handled, nil
	case key.KeyBackspace:
		if e.caret > e.lineStart(e.caret) {
			_, size := e.runeBefore(e.caret)
			e.applyEdit(e.caret-size, size, "", e.caret-size)
		}
		return dispatcher.Handled, nil
	case key.KeyDelete:
		if e.caret < e.lineEnd(e.caret) {
			_, size := e.runeAt(e.caret)
			e.applyEdit(e.caret, size, "", e.caret)
		}
		return dispatcher.Handled, nil
	case key.KeyEnter:
		e.applyEdit(e.caret, 0, "\n", e.caret+1)
		return dispatcher.Handled, nil
	case key.KeyTab:
		e.applyEdit(e.caret, 0, "\t", e.caret+1)
		return dispatcher.Handled, nil
	case key.KeyInsert:
		e.overtype = !e.overtype
		return dispatcher.Handled, nil
	case key.KeyLeft, key.KeyRight, key.KeyUp, key.KeyDown, key.KeyHome, key.KeyEnd:
		// Motion ends the insertion run but stays in insert mode.
		e.tracker.Complete()
		e.insertMotion(ev.Key)
		return dispatcher.Handled, nil
	}

	if ev.IsChar() && !ev.IsModified() {
		e.insertRune(ev.Rune)
		return dispatcher.Handled, nil
	}

	return dispatcher.NotHandled, nil
}

// insertRune inserts (or, in overtype mode, overwrites) one character.
func (e *Editor) insertRune(r rune) {
	text := string(r)
	if e.overtype && e.caret < e.lineEnd(e.caret) {
		_, size := e.runeAt(e.caret)
		e.applyEdit(e.caret, size, text, e.caret+len(text))
		return
	}
	e.applyEdit(e.caret, 0, text, e.caret+len(text))
}

// insertMotion moves the caret in insert mode, clamping silently.
func (e *Editor) insertMotion(k key.Key) {
	switch k {
	case key.KeyLeft:
		_ = e.moveLeft(1)
	case key.KeyRight:
		_ = e.moveRight(1)
	case key.KeyUp:
		_ = e.moveUp(1)
	case key.KeyDown:
		_ = e.moveDown(1)
	case key.KeyHome:
		e.caret = e.lineStart(e.caret)
	case key.KeyEnd:
		e.caret = e.lineEnd(e.caret)
	}
}

// enterInsert switches to insert mode: change tracking turns on and an
// undo transaction groups the whole insertion run.
func (e *Editor) enterInsert() {
	e.mode = ModeInsert
	if !e.trackingOff {
		e.tracker.SetEnabled(true)
	}
	e.insertTxn = e.history.Begin("insert")
}

// leaveInsert returns to normal mode: the pending change completes, the
// insert transaction closes, and the caret steps back one character.
func (e *Editor) leaveInsert() {
	e.tracker.Complete()
	e.tracker.SetEnabled(false)
	if e.insertTxn != nil {
		e.insertTxn.Complete()
		e.insertTxn = nil
	}
	e.mode = ModeNormal
	if e.caret > e.lineStart(e.caret) {
		_, size := e.runeBefore(e.caret)
		e.caret -= size
	}
}

// moveLeft moves n characters left within the line.
func (e *Editor) moveLeft(n int) error {
	for i := 0; i < n; i++ {
		if e.caret <= e.lineStart(e.caret) {
			return dispatcher.ErrMotionFailed
		}
		_, size := e.runeBefore(e.caret)
		e.caret -= size
	}
	return nil
}

// moveRight moves n characters right within the line.
func (e *Editor) moveRight(n int) error {
	for i := 0; i < n; i++ {
		if e.caret >= e.lineEnd(e.caret) {
			return dispatcher.ErrMotionFailed
		}
		_, size := e.runeAt(e.caret)
		e.caret += size
	}
	return nil
}

// moveDown moves n lines down, clamping the column to the new line.
func (e *Editor) moveDown(n int) error {
	for i := 0; i < n; i++ {
		end := e.lineEnd(e.caret)
		if end >= len(e.text) {
			return dispatcher.ErrMotionFailed
		}
		col := e.caret - e.lineStart(e.caret)
		next := end + 1
		e.caret = clampOffset(next, col, e.lineEnd(next))
	}
	return nil
}

// moveUp moves n lines up, clamping the column to the new line.
func (e *Editor) moveUp(n int) error {
	for i := 0; i < n; i++ {
		start := e.lineStart(e.caret)
		if start == 0 {
			return dispatcher.ErrMotionFailed
		}
		col := e.caret - start
		prev := e.lineStart(start - 1)
		e.caret = clampOffset(prev, col, start-1)
	}
	return nil
}

func clampOffset(lineStart, col, lineEnd int) int {
	offset := lineStart + col
	if offset > lineEnd {
		return lineEnd
	}
	return offset
}

// deleteRight removes up to n characters under and after the caret,
// staying within the line.
func (e *Editor) deleteRight(n int) error {
	end := e.lineEnd(e.caret)
	if e.caret >= end {
		return dispatcher.ErrMotionFailed
	}

	stop := e.caret
	for i := 0; i < n && stop < end; i++ {
		_, size := utf8.DecodeRuneInString(e.text[stop:end])
		stop += size
	}
	e.applyEdit(e.caret, stop-e.caret, "", e.caret)
	return nil
}

// toggleCase flips the case of n characters, advancing over each.
func (e *Editor) toggleCase(n int) error {
	if e.caret >= e.lineEnd(e.caret) {
		return dispatcher.ErrMotionFailed
	}

	for i := 0; i < n && e.caret < e.lineEnd(e.caret); i++ {
		r, size := e.runeAt(e.caret)
		toggled := r
		switch {
		case unicode.IsUpper(r):
			toggled = unicode.ToLower(r)
		case unicode.IsLower(r):
			toggled = unicode.ToUpper(r)
		}
		text := string(toggled)
		e.applyEdit(e.caret, size, text, e.caret+len(text))
	}
	return nil
}

// replaceChars overwrites n characters under the caret with r.
func (e *Editor) replaceChars(r rune, n int) error {
	end := e.lineEnd(e.caret)
	stop := e.caret
	for i := 0; i < n; i++ {
		if stop >= end {
			return dispatcher.ErrMotionFailed
		}
		_, size := utf8.DecodeRuneInString(e.text[stop:end])
		stop += size
	}

	replacement := make([]rune, n)
	for i := range replacement {
		replacement[i] = r
	}
	text := string(replacement)
	e.applyEdit(e.caret, stop-e.caret, text, e.caret+len(text)-utf8.RuneLen(r))
	return nil
}

// repeatLastChange applies the last completed insertion run at the
// caret, as one undo unit.
func (e *Editor) repeatLastChange() error {
	if !e.hasLastChange {
		return nil
	}

	txn := e.history.Begin("repeat")
	defer txn.Complete()
	return e.applyChange(e.lastChange)
}

// applyChange replays a TextChange against the buffer.
func (e *Editor) applyChange(c tracking.TextChange) error {
	if text, ok := c.Insert(); ok {
		e.applyEdit(e.caret, 0, text, e.caret+len(text))
		return nil
	}
	if n, ok := c.DeleteLeft(); ok {
		for i := 0; i < n; i++ {
			if e.caret <= e.lineStart(e.caret) {
				return dispatcher.ErrMotionFailed
			}
			_, size := e.runeBefore(e.caret)
			e.applyEdit(e.caret-size, size, "", e.caret-size)
		}
		return nil
	}
	if n, ok := c.DeleteRight(); ok {
		for i := 0; i < n; i++ {
			if e.caret >= e.lineEnd(e.caret) {
				return dispatcher.ErrMotionFailed
			}
			_, size := e.runeAt(e.caret)
			e.applyEdit(e.caret, size, "", e.caret)
		}
		return nil
	}
	if first, second, ok := c.Combination(); ok {
		if err := e.applyChange(first); err != nil {
			return err
		}
		return e.applyChange(second)
	}
	return nil
}
