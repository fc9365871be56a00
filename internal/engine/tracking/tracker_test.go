package tracking

import (
	"strings"
	"testing"
)

func enabledTracker(opts ...TrackerOption) *Tracker {
	t := NewTracker(opts...)
	t.SetEnabled(true)
	return t
}

func mustCurrent(t *testing.T, tr *Tracker) TextChange {
	t.Helper()
	change, ok := tr.Current()
	if !ok {
		t.Fatal("no pending change")
	}
	return change
}

// Merge law: sequential inserts at advancing positions merge into one
// Insert with the concatenated text.
func TestContiguousInsertsMerge(t *testing.T) {
	tr := enabledTracker()
	tr.Note(Edit{Start: 0, Inserted: "a", CaretBefore: 0})
	tr.Note(Edit{Start: 1, Inserted: "b", CaretBefore: 1})
	tr.Note(Edit{Start: 2, Inserted: "c", CaretBefore: 2})

	if got := mustCurrent(t, tr); !got.Equals(NewInsert("abc")) {
		t.Errorf("current = %v, want Insert(\"abc\")", got)
	}
}

// Delete merge law: sequential backward deletions sum their counts.
func TestContiguousDeleteLeftsMerge(t *testing.T) {
	tr := enabledTracker()
	// Backspace at offset 5, then at offset 4.
	tr.Note(Edit{Start: 4, Deleted: "x", CaretBefore: 5})
	tr.Note(Edit{Start: 3, Deleted: "y", CaretBefore: 4})

	if got := mustCurrent(t, tr); !got.Equals(NewDeleteLeft(2)) {
		t.Errorf("current = %v, want DeleteLeft(2)", got)
	}
}

func TestContiguousDeleteRightsMerge(t *testing.T) {
	tr := enabledTracker()
	// Forward delete at offset 2, twice; the caret does not move.
	tr.Note(Edit{Start: 2, Deleted: "x", CaretBefore: 2})
	tr.Note(Edit{Start: 2, Deleted: "y", CaretBefore: 2})

	if got := mustCurrent(t, tr); !got.Equals(NewDeleteRight(2)) {
		t.Errorf("current = %v, want DeleteRight(2)", got)
	}
}

// Delete counts are characters, not bytes: backspacing over a multibyte
// character and then an ASCII one still sums to DeleteLeft(2), and the
// byte-width difference only shows up in contiguity offsets.
func TestDeleteCountsAreCharacters(t *testing.T) {
	tr := enabledTracker()
	// Buffer "aé": backspace removes the two-byte é at offset 1, then
	// the a at offset 0.
	tr.Note(Edit{Start: 1, Deleted: "é", CaretBefore: 3})
	tr.Note(Edit{Start: 0, Deleted: "a", CaretBefore: 1})

	if got := mustCurrent(t, tr); !got.Equals(NewDeleteLeft(2)) {
		t.Errorf("current = %v, want DeleteLeft(2)", got)
	}
}

func TestForwardDeleteCountsAreCharacters(t *testing.T) {
	tr := enabledTracker()
	tr.Note(Edit{Start: 0, Deleted: "日本", CaretBefore: 0})

	if got := mustCurrent(t, tr); !got.Equals(NewDeleteRight(2)) {
		t.Errorf("current = %v, want DeleteRight(2)", got)
	}
}

func TestReplaceDeleteCountIsCharacters(t *testing.T) {
	tr := enabledTracker()
	tr.Note(Edit{Start: 0, Deleted: "éé", Inserted: "x", CaretBefore: 4})

	want := NewCombination(NewDeleteLeft(2), NewInsert("x"))
	if got := mustCurrent(t, tr); !got.Equals(want) {
		t.Errorf("current = %v, want %v", got, want)
	}
}

// The delete direction is decided purely by where the caret sat relative
// to the deleted span, not by command identity.
func TestDeleteDirectionHeuristic(t *testing.T) {
	tests := []struct {
		name string
		edit Edit
		want TextChange
	}{
		{"caret after span deletes backward", Edit{Start: 3, Deleted: "ab", CaretBefore: 5}, NewDeleteLeft(2)},
		{"caret at span start deletes forward", Edit{Start: 3, Deleted: "ab", CaretBefore: 3}, NewDeleteRight(2)},
		{"caret before span deletes forward", Edit{Start: 3, Deleted: "ab", CaretBefore: 1}, NewDeleteRight(2)},
		{"caret inside span deletes backward", Edit{Start: 3, Deleted: "ab", CaretBefore: 4}, NewDeleteLeft(2)},
	}

	for _, tt := range tests {
		tr := enabledTracker()
		tr.Note(tt.edit)
		if got := mustCurrent(t, tr); !got.Equals(tt.want) {
			t.Errorf("%s: current = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// Replace law: replacing a selection yields DeleteLeft of the old text
// combined with Insert of the new.
func TestReplaceDecomposes(t *testing.T) {
	tr := enabledTracker()
	tr.Note(Edit{Start: 0, Deleted: "old", Inserted: "new!", CaretBefore: 3})

	want := NewCombination(NewDeleteLeft(3), NewInsert("new!"))
	if got := mustCurrent(t, tr); !got.Equals(want) {
		t.Errorf("current = %v, want %v", got, want)
	}
}

// Normalization idempotence: a replace whose sides are equal after blank
// normalization must not corrupt the pending insert with a spurious
// delete+insert pair.
func TestNormalizedReplaceIsNotSpurious(t *testing.T) {
	normalize := func(s string) string {
		return strings.ReplaceAll(s, "    ", "\t")
	}
	tr := enabledTracker(WithNormalizeBlanks(normalize))

	// The user typed four spaces...
	tr.Note(Edit{Start: 0, Inserted: "    ", CaretBefore: 0})
	// ...and the host silently retabbed them.
	tr.Note(Edit{Start: 0, Deleted: "    ", Inserted: "\t", CaretBefore: 4})

	if got := mustCurrent(t, tr); !got.Equals(NewInsert("\t")) {
		t.Errorf("current = %v, want Insert(\"\\t\")", got)
	}

	// Typing continues after the retab at the new end position.
	tr.Note(Edit{Start: 1, Inserted: "x", CaretBefore: 1})
	if got := mustCurrent(t, tr); !got.Equals(NewInsert("\tx")) {
		t.Errorf("current = %v, want Insert(\"\\tx\")", got)
	}
}

func TestNormalizedReplaceWithoutPendingInsertIsDropped(t *testing.T) {
	normalize := func(s string) string {
		return strings.ReplaceAll(s, "    ", "\t")
	}
	tr := enabledTracker(WithNormalizeBlanks(normalize))

	tr.Note(Edit{Start: 0, Deleted: "    ", Inserted: "\t", CaretBefore: 4})
	if _, ok := tr.Current(); ok {
		t.Error("retab with no pending insert should not start a change")
	}
}

// Insert followed by backspace chains into a Combination: adjacent but
// heterogeneous edits do not coalesce.
func TestHeterogeneousContiguousEditsCombine(t *testing.T) {
	tr := enabledTracker()
	tr.Note(Edit{Start: 0, Inserted: "ab", CaretBefore: 0})
	tr.Note(Edit{Start: 1, Deleted: "b", CaretBefore: 2})

	want := NewCombination(NewInsert("ab"), NewDeleteLeft(1))
	if got := mustCurrent(t, tr); !got.Equals(want) {
		t.Errorf("current = %v, want %v", got, want)
	}
}

// A non-contiguous edit completes the pending change and starts a new one.
func TestNonContiguousEditCompletes(t *testing.T) {
	var completed []TextChange
	tr := enabledTracker(WithChangeCompleted(func(c TextChange) {
		completed = append(completed, c)
	}))

	tr.Note(Edit{Start: 0, Inserted: "ab", CaretBefore: 0})
	tr.Note(Edit{Start: 10, Inserted: "cd", CaretBefore: 10})

	if len(completed) != 1 || !completed[0].Equals(NewInsert("ab")) {
		t.Fatalf("completed = %v, want [Insert(\"ab\")]", completed)
	}
	if got := mustCurrent(t, tr); !got.Equals(NewInsert("cd")) {
		t.Errorf("current = %v, want Insert(\"cd\")", got)
	}
}

func TestCompleteEmitsAndResets(t *testing.T) {
	var completed []TextChange
	tr := enabledTracker(WithChangeCompleted(func(c TextChange) {
		completed = append(completed, c)
	}))

	tr.Note(Edit{Start: 0, Inserted: "hi", CaretBefore: 0})
	tr.Complete()

	if len(completed) != 1 || !completed[0].Equals(NewInsert("hi")) {
		t.Fatalf("completed = %v, want [Insert(\"hi\")]", completed)
	}
	if _, ok := tr.Current(); ok {
		t.Error("Complete did not clear the pending change")
	}

	// Completing again is a no-op.
	tr.Complete()
	if len(completed) != 1 {
		t.Error("Complete on idle tracker fired an event")
	}
}

// Disabling discards the pending change without firing an event.
func TestDisableDiscardsSilently(t *testing.T) {
	fired := false
	tr := enabledTracker(WithChangeCompleted(func(TextChange) { fired = true }))

	tr.Note(Edit{Start: 0, Inserted: "hi", CaretBefore: 0})
	tr.SetEnabled(false)

	if fired {
		t.Error("disable fired ChangeCompleted")
	}
	if _, ok := tr.Current(); ok {
		t.Error("disable did not discard the pending change")
	}

	// Edits while disabled are ignored.
	tr.Note(Edit{Start: 0, Inserted: "x", CaretBefore: 0})
	if _, ok := tr.Current(); ok {
		t.Error("disabled tracker accepted an edit")
	}
}

func TestChangedEventFires(t *testing.T) {
	var seen []TextChange
	tr := enabledTracker(WithChanged(func(c TextChange) {
		seen = append(seen, c)
	}))

	tr.Note(Edit{Start: 0, Inserted: "a", CaretBefore: 0})
	tr.Note(Edit{Start: 1, Inserted: "b", CaretBefore: 1})

	if len(seen) != 2 {
		t.Fatalf("Changed fired %d times, want 2", len(seen))
	}
	if !seen[1].Equals(NewInsert("ab")) {
		t.Errorf("last Changed value = %v, want Insert(\"ab\")", seen[1])
	}
}

func TestEmptyEditIgnored(t *testing.T) {
	tr := enabledTracker()
	tr.Note(Edit{Start: 0})
	if _, ok := tr.Current(); ok {
		t.Error("empty edit started a change")
	}
}
