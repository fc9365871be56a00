package key

import "testing"

func TestEventEquals(t *testing.T) {
	tests := []struct {
		a, b Event
		want bool
	}{
		{NewRuneEvent('a', ModNone), NewRuneEvent('a', ModNone), true},
		{NewRuneEvent('a', ModNone), NewRuneEvent('b', ModNone), false},
		{NewRuneEvent('a', ModNone), NewRuneEvent('a', ModCtrl), false},
		{NewSpecialEvent(KeyEscape, ModNone), NewSpecialEvent(KeyEscape, ModNone), true},
		{NewSpecialEvent(KeyEscape, ModNone), NewSpecialEvent(KeyEnter, ModNone), false},
		{NewSpecialEvent(KeyLeft, ModShift), NewSpecialEvent(KeyLeft, ModNone), false},
	}

	for _, tt := range tests {
		if got := tt.a.Equals(tt.b); got != tt.want {
			t.Errorf("%v.Equals(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModNone), "A"},
		{NewRuneEvent('s', ModCtrl), "C-s"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewSpecialEvent(KeyEscape, ModNone), "Esc"},
		{NewSpecialEvent(KeyLeft, ModShift), "S-Left"},
		{NewSpecialEvent(KeyTab, ModNone), "Tab"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEventVimString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent(' ', ModNone), "<Space>"},
		{NewRuneEvent('s', ModCtrl), "<C-s>"},
		{NewSpecialEvent(KeyEscape, ModNone), "<Esc>"},
		{NewSpecialEvent(KeyEnter, ModNone), "<CR>"},
		{NewSpecialEvent(KeyLeft, ModShift), "<S-Left>"},
	}

	for _, tt := range tests {
		if got := tt.event.VimString(); got != tt.want {
			t.Errorf("VimString() = %q, want %q", got, tt.want)
		}
	}
}

func TestEventPredicates(t *testing.T) {
	a := NewRuneEvent('a', ModNone)
	if !a.IsRune() || !a.IsChar() {
		t.Error("rune event predicates failed")
	}
	if a.IsModified() {
		t.Error("unmodified rune reported modified")
	}

	shifted := NewRuneEvent('A', ModShift)
	if shifted.IsModified() {
		t.Error("Shift on a character must not count as modified")
	}

	ctrl := NewRuneEvent('a', ModCtrl)
	if !ctrl.IsModified() {
		t.Error("Ctrl-modified rune not reported modified")
	}

	esc := NewSpecialEvent(KeyEscape, ModNone)
	if !esc.IsEscape() || esc.IsRune() {
		t.Error("escape predicates failed")
	}
	if NewSpecialEvent(KeyEscape, ModCtrl).IsEscape() {
		t.Error("modified escape reported as escape")
	}
}

func TestEventMatches(t *testing.T) {
	if !NewRuneEvent('x', ModNone).Matches("x") {
		t.Error("x should match spec \"x\"")
	}
	if !NewSpecialEvent(KeyEscape, ModNone).Matches("<Esc>") {
		t.Error("escape should match <Esc>")
	}
	if NewRuneEvent('x', ModNone).Matches("<C-x>") {
		t.Error("x should not match <C-x>")
	}
	if NewRuneEvent('x', ModNone).Matches("not a key!!") {
		t.Error("invalid spec must never match")
	}
}
