package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec    string
		want    Event
		wantErr bool
	}{
		{"a", NewRuneEvent('a', ModNone), false},
		{"A", NewRuneEvent('A', ModNone), false},
		{"@", NewRuneEvent('@', ModNone), false},
		{"~", NewRuneEvent('~', ModNone), false},
		{"Space", NewRuneEvent(' ', ModNone), false},
		{"Escape", NewSpecialEvent(KeyEscape, ModNone), false},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone), false},
		{"<CR>", NewSpecialEvent(KeyEnter, ModNone), false},
		{"<BS>", NewSpecialEvent(KeyBackspace, ModNone), false},
		{"<Tab>", NewSpecialEvent(KeyTab, ModNone), false},
		{"<Left>", NewSpecialEvent(KeyLeft, ModNone), false},
		{"<S-Left>", NewSpecialEvent(KeyLeft, ModShift), false},
		{"<C-s>", NewRuneEvent('s', ModCtrl), false},
		{"<C-S>", NewRuneEvent('s', ModCtrl), false},
		{"<C-A-x>", NewRuneEvent('x', ModCtrl|ModAlt), false},
		{"<Space>", NewRuneEvent(' ', ModNone), false},
		{"Ctrl+S", NewRuneEvent('s', ModCtrl), false},
		{"Ctrl+Shift+P", NewRuneEvent('p', ModCtrl|ModShift), false},
		{"", Event{}, true},
		{"   ", Event{}, true},
		{"<>", Event{}, true},
		{"<Bogus>", Event{}, true},
		{"notakey", Event{}, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %v", tt.spec, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.spec, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestParseEmptyError(t *testing.T) {
	_, err := Parse("")
	if !errors.Is(err, ErrEmptySpec) {
		t.Errorf("Parse(\"\") error = %v, want ErrEmptySpec", err)
	}
}

func TestParseSequence(t *testing.T) {
	events, err := ParseSequence("ihello <Esc>")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}

	want := []Event{
		NewRuneEvent('i', ModNone),
		NewRuneEvent('h', ModNone),
		NewRuneEvent('e', ModNone),
		NewRuneEvent('l', ModNone),
		NewRuneEvent('l', ModNone),
		NewRuneEvent('o', ModNone),
		NewRuneEvent(' ', ModNone),
		NewSpecialEvent(KeyEscape, ModNone),
	}

	if len(events) != len(want) {
		t.Fatalf("ParseSequence returned %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if !events[i].Equals(want[i]) {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}
}

func TestParseSequenceSpecials(t *testing.T) {
	events, err := ParseSequence("~<Left><Down>")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}

	want := []Event{
		NewRuneEvent('~', ModNone),
		NewSpecialEvent(KeyLeft, ModNone),
		NewSpecialEvent(KeyDown, ModNone),
	}

	if len(events) != len(want) {
		t.Fatalf("ParseSequence returned %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if !events[i].Equals(want[i]) {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}
}

func TestParseSequenceUnmatchedBracket(t *testing.T) {
	if _, err := ParseSequence("a<Esc"); !errors.Is(err, ErrUnmatchedBracket) {
		t.Errorf("error = %v, want ErrUnmatchedBracket", err)
	}
}

func TestFormatSequenceRoundTrip(t *testing.T) {
	specs := []string{
		"ihello <Esc>",
		"~<Left><Down>",
		"@a",
		"<C-s>x",
	}

	for _, spec := range specs {
		events, err := ParseSequence(spec)
		if err != nil {
			t.Fatalf("ParseSequence(%q): %v", spec, err)
		}
		again, err := ParseSequence(FormatSequence(events))
		if err != nil {
			t.Fatalf("re-parse of %q: %v", FormatSequence(events), err)
		}
		if len(again) != len(events) {
			t.Fatalf("round-trip of %q changed length", spec)
		}
		for i := range events {
			if !again[i].Equals(events[i]) {
				t.Errorf("round-trip of %q: event %d = %v, want %v", spec, i, again[i], events[i])
			}
		}
	}
}
