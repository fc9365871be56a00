package editor

import (
	"errors"
	"testing"

	"github.com/dshills/vimbridge/internal/dispatcher"
	"github.com/dshills/vimbridge/internal/input/key"
)

// setRegister loads a vim-notation sequence into a macro register.
func setRegister(t *testing.T, e *Editor, register rune, keys string) {
	t.Helper()
	seq, err := key.ParseSequence(keys)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", keys, err)
	}
	if err := e.Recorder().Set(register, seq); err != nil {
		t.Fatalf("Set(%q): %v", register, err)
	}
}

func TestMacroInsertThroughModes(t *testing.T) {
	e := New("world")
	setRegister(t, e, 'c', "ihello <Esc>")

	if err := e.Player().Run('c', 1); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := e.Text(); got != "hello world" {
		t.Errorf("text = %q, want %q", got, "hello world")
	}
	if e.Mode() != ModeNormal {
		t.Errorf("mode = %v, want normal", e.Mode())
	}
}

func TestCountedMacroEditsAcrossLines(t *testing.T) {
	e := New("cat\ndog\nbear")
	setRegister(t, e, 'c', "~<Left><Down>")

	if err := e.Player().Run('c', 2); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.Text(); got != "Cat\nDog\nbear" {
		t.Fatalf("text = %q, want %q", got, "Cat\nDog\nbear")
	}

	// Both iterations form one undo unit.
	mustFeed(t, e, "u")
	if got := e.Text(); got != "cat\ndog\nbear" {
		t.Errorf("undo text = %q, want original", got)
	}
	if got := e.Caret(); got != 0 {
		t.Errorf("undo caret = %d, want 0", got)
	}
	if e.History().CanUndo() {
		t.Error("a single undo should exhaust the macro's history")
	}
}

func TestMacroRunViaAtKeys(t *testing.T) {
	e := New("cat\ndog\nbear")
	setRegister(t, e, 'c', "~<Left><Down>")

	mustFeed(t, e, "2@c")

	if got := e.Text(); got != "Cat\nDog\nbear" {
		t.Errorf("text = %q, want %q", got, "Cat\nDog\nbear")
	}
}

func TestMacroErrorKeepsCommittedEdits(t *testing.T) {
	e := New("ab\ncd")
	setRegister(t, e, 'd', "x")

	// The third iteration finds the first line empty and fails; the two
	// committed deletions stand.
	err := e.Player().Run('d', 5)
	if !errors.Is(err, dispatcher.ErrMotionFailed) {
		t.Fatalf("err = %v, want ErrMotionFailed", err)
	}
	if got := e.Text(); got != "\ncd" {
		t.Fatalf("text = %q, want %q", got, "\ncd")
	}

	// The aborted run still committed as one undo unit.
	mustFeed(t, e, "u")
	if got := e.Text(); got != "ab\ncd" {
		t.Errorf("undo text = %q, want original", got)
	}
}

func TestRunLastAfterNamedRun(t *testing.T) {
	e := New("abcdef")
	setRegister(t, e, 'a', "x")

	mustFeed(t, e, "@a")
	mustFeed(t, e, "@@")

	if got := e.Text(); got != "cdef" {
		t.Errorf("text = %q, want %q", got, "cdef")
	}
}

func TestRunLastWithoutPriorRunFails(t *testing.T) {
	e := New("abc")

	err := feed(t, e, "@@")
	if err == nil {
		t.Error("@@ with no prior run should report an error")
	}
}

func TestRunEmptyRegisterFails(t *testing.T) {
	e := New("abc")

	err := feed(t, e, "@z")
	if err == nil {
		t.Error("@z with empty register should report an error")
	}
	if got := e.Text(); got != "abc" {
		t.Errorf("text = %q, want unchanged", got)
	}
}

func TestRepeatAfterMacro(t *testing.T) {
	e := New("")
	setRegister(t, e, 'c', "iab<Esc>")

	if err := e.Player().Run('c', 1); err != nil {
		t.Fatalf("Run: %v", err)
	}
	mustFeed(t, e, "$.")

	if got := e.Text(); got != "abab" {
		t.Errorf("text = %q, want %q", got, "abab")
	}
}

func TestUppercaseRegisterAppendsAcrossRecordings(t *testing.T) {
	e := New("abcdef")

	mustFeed(t, e, "qaxq")
	mustFeed(t, e, "qAxq")

	// Register a now holds two deletions.
	mustFeed(t, e, "@a")
	if got := e.Text(); got != "ef" {
		t.Errorf("text = %q, want %q", got, "ef")
	}
}

func TestRecordingCapturesInsertModeKeys(t *testing.T) {
	e := New("")

	mustFeed(t, e, "qbihi<Esc>q")
	if got := e.Text(); got != "hi" {
		t.Fatalf("text after recording = %q, want %q", got, "hi")
	}

	e.SetText("")
	mustFeed(t, e, "@b")
	if got := e.Text(); got != "hi" {
		t.Errorf("text after replay = %q, want %q", got, "hi")
	}
}
