package tracking

import (
	"strings"
	"unicode/utf8"
)

// Edit describes one committed buffer mutation as reported by the host:
// the text removed starting at Start, the text inserted in its place, and
// where the caret sat before the edit was applied.
type Edit struct {
	// Start is the buffer offset of the deleted span and the insertion
	// point.
	Start int

	// Deleted is the text removed by the edit (empty for pure inserts).
	Deleted string

	// Inserted is the text added by the edit (empty for pure deletes).
	Inserted string

	// CaretBefore is the caret offset before the edit was applied.
	CaretBefore int
}

// NormalizeFunc transforms blank runs before replace classification, e.g.
// the host's space-to-tab auto-indent conversion.
type NormalizeFunc func(string) string

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithNormalizeBlanks sets the blank-normalization transform applied to
// both sides of a replace before classification.
func WithNormalizeBlanks(fn NormalizeFunc) TrackerOption {
	return func(t *Tracker) {
		if fn != nil {
			t.normalize = fn
		}
	}
}

// WithChanged sets the callback fired whenever the pending change is
// created or updated.
func WithChanged(fn func(TextChange)) TrackerOption {
	return func(t *Tracker) {
		t.onChanged = fn
	}
}

// WithChangeCompleted sets the callback fired when a pending change is
// completed.
func WithChangeCompleted(fn func(TextChange)) TrackerOption {
	return func(t *Tracker) {
		t.onCompleted = fn
	}
}

// Tracker converts low-level edit notifications into a merged semantic
// TextChange. All methods are called synchronously from the dispatch
// path; the Tracker never mutates the buffer itself.
type Tracker struct {
	enabled bool

	// current is the pending change; nil while Idle or Disabled.
	current *TextChange

	// endPos is the buffer offset where the next contiguous edit must
	// apply: the end of the current change's net effect.
	endPos int

	normalize   NormalizeFunc
	onChanged   func(TextChange)
	onCompleted func(TextChange)
}

// NewTracker creates a tracker. Tracking starts disabled; the host
// enables it when the editor enters an insert-like context.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		normalize: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Enabled reports whether edits are being tracked.
func (t *Tracker) Enabled() bool {
	return t.enabled
}

// SetEnabled turns tracking on or off. Disabling discards any pending
// change without firing an event.
func (t *Tracker) SetEnabled(enabled bool) {
	if t.enabled == enabled {
		return
	}
	t.enabled = enabled
	if !enabled {
		t.current = nil
	}
}

// Current returns the pending change, if any.
func (t *Tracker) Current() (TextChange, bool) {
	if t.current == nil {
		return TextChange{}, false
	}
	return *t.current, true
}

// Complete ends the current insertion run: any non-edit action that
// signals the run is over (leaving insert mode, an unrelated command)
// calls this. The pending change is emitted and the tracker returns to
// Idle.
func (t *Tracker) Complete() {
	if t.current == nil {
		return
	}
	done := *t.current
	t.current = nil
	if t.onCompleted != nil {
		t.onCompleted(done)
	}
}

// Note classifies one edit and folds it into the pending change.
func (t *Tracker) Note(e Edit) {
	if !t.enabled {
		return
	}

	switch {
	case e.Deleted == "" && e.Inserted == "":
		return
	case e.Deleted == "":
		t.noteInsert(e)
	case e.Inserted == "":
		t.noteDelete(e)
	default:
		t.noteReplace(e)
	}
}

// noteInsert handles a pure insertion.
func (t *Tracker) noteInsert(e Edit) {
	t.apply(NewInsert(e.Inserted), e.Start, e.Start+len(e.Inserted))
}

// noteDelete handles a pure deletion. The direction is decided by the
// caret's position relative to the deleted span: a caret sitting past the
// span start deleted backward, a caret at (or before) the start deleted
// forward without moving.
func (t *Tracker) noteDelete(e Edit) {
	// Counts are characters; positions stay byte offsets.
	n := utf8.RuneCountInString(e.Deleted)
	if e.CaretBefore > e.Start {
		t.apply(NewDeleteLeft(n), e.Start+len(e.Deleted), e.Start)
		return
	}
	t.apply(NewDeleteRight(n), e.Start, e.Start)
}

// noteReplace handles an atomic delete+insert. The host delivers replaces
// as one operation; they decompose into "delete the selection, insert the
// new text". When both sides normalize to the same blanks (the host
// silently retabbed whitespace) the pending insert is patched in place
// instead of growing a spurious delete+insert pair.
func (t *Tracker) noteReplace(e Edit) {
	if t.normalize(e.Deleted) == t.normalize(e.Inserted) {
		t.noteNormalizedReplace(e)
		return
	}

	change := NewCombination(NewDeleteLeft(utf8.RuneCountInString(e.Deleted)), NewInsert(e.Inserted))
	t.apply(change, e.Start+len(e.Deleted), e.Start+len(e.Inserted))
}

// noteNormalizedReplace rewrites the tail of an accumulated insert whose
// text the host just reformatted. Without a pending insert covering the
// replaced text the edit is semantically a no-op and is dropped.
func (t *Tracker) noteNormalizedReplace(e Edit) {
	if t.current == nil || !t.current.IsInsert() {
		return
	}
	text, _ := t.current.Insert()
	if e.Start+len(e.Deleted) != t.endPos || !strings.HasSuffix(text, e.Deleted) {
		return
	}

	patched := NewInsert(text[:len(text)-len(e.Deleted)] + e.Inserted)
	t.current = &patched
	t.endPos = e.Start + len(e.Inserted)
	if t.onChanged != nil {
		t.onChanged(patched)
	}
}

// apply folds a classified change into the pending state. at is the
// offset the edit applies to; end is the net-effect end afterwards.
func (t *Tracker) apply(change TextChange, at, end int) {
	switch {
	case t.current == nil:
		t.current = &change
	case at == t.endPos:
		merged := merge(*t.current, change)
		t.current = &merged
	default:
		// Not contiguous: the previous run is over.
		done := *t.current
		t.current = &change
		if t.onCompleted != nil {
			t.onCompleted(done)
		}
	}

	t.endPos = end
	if t.onChanged != nil {
		t.onChanged(*t.current)
	}
}

// merge folds a contiguous edit into the pending change. Same-kind edits
// coalesce; heterogeneous ones chain through Combination.
func merge(current, next TextChange) TextChange {
	if text, ok := current.Insert(); ok {
		if add, ok := next.Insert(); ok {
			return NewInsert(text + add)
		}
	}
	if n, ok := current.DeleteLeft(); ok {
		if m, ok := next.DeleteLeft(); ok {
			return NewDeleteLeft(n + m)
		}
	}
	if n, ok := current.DeleteRight(); ok {
		if m, ok := next.DeleteRight(); ok {
			return NewDeleteRight(n + m)
		}
	}
	return NewCombination(current, next)
}
