package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyTab, "Tab"},
		{KeyBackspace, "Backspace"},
		{KeyUp, "Up"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyKP0, "KP0"},
		{KeyKP9, "KP9"},
		{KeyKPEnter, "KPEnter"},
		{KeyRune, "Rune"},
		{KeyNone, "None"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyPredicates(t *testing.T) {
	if !KeyUp.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey misclassified")
	}
	if !KeyHome.IsNavigationKey() || !KeyPageDown.IsNavigationKey() {
		t.Error("IsNavigationKey misclassified")
	}
	if KeyRune.IsSpecial() || !KeyEscape.IsSpecial() {
		t.Error("IsSpecial misclassified")
	}
	if !KeyKP5.IsKeypadKey() || KeyF5.IsKeypadKey() {
		t.Error("IsKeypadKey misclassified")
	}
}

func TestDigitEquivalent(t *testing.T) {
	tests := []struct {
		key    Key
		want   rune
		wantOK bool
	}{
		{KeyKP0, '0', true},
		{KeyKP5, '5', true},
		{KeyKP9, '9', true},
		{KeyKPAdd, 0, false},
		{KeyKPEnter, 0, false},
		{KeyEscape, 0, false},
		{KeyRune, 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.key.DigitEquivalent()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%s.DigitEquivalent() = (%q, %v), want (%q, %v)",
				tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"esc", KeyEscape},
		{"Escape", KeyEscape},
		{"CR", KeyEnter},
		{"pgup", KeyPageUp},
		{"  tab ", KeyTab},
		{"bogus", KeyNone},
		{"", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
