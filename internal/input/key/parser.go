package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Key names: "Enter", "Escape", "Tab", "Space"
//   - With modifiers: "Ctrl+S", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<C-S-p>", "<CR>", "<Esc>", "<BS>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if strings.Contains(spec, "+") && utf8.RuneCountInString(spec) > 1 {
		return parseModifierStyle(spec)
	}

	return parseSingle(spec)
}

// parseVimStyle parses the inside of <...> notation like "C-s", "CR", "Esc".
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")

	var mods Modifier
	keyPart := parts[len(parts)-1]
	for _, part := range parts[:len(parts)-1] {
		if part == "" {
			continue
		}
		mod := ModifierFromName(part)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, part)
		}
		mods = mods.With(mod)
	}

	// "-" itself as the key ("<C-->") splits into empty parts.
	if keyPart == "" && strings.HasSuffix(inner, "-") {
		keyPart = "-"
	}

	return buildEvent(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style specifications.
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")

	var mods Modifier
	keyPart := parts[len(parts)-1]
	for _, part := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(part))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, part)
		}
		mods = mods.With(mod)
	}

	if keyPart == "" && strings.HasSuffix(spec, "+") {
		keyPart = "+"
	}

	return buildEvent(strings.TrimSpace(keyPart), mods)
}

// parseSingle parses a bare character or key name.
func parseSingle(spec string) (Event, error) {
	return buildEvent(spec, ModNone)
}

// buildEvent resolves a key part (single character or key name) with mods.
func buildEvent(keyPart string, mods Modifier) (Event, error) {
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		// Ctrl combinations are conventionally lowercase.
		if mods.HasCtrl() && r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return NewRuneEvent(r, mods), nil
	}

	if strings.EqualFold(keyPart, "space") {
		return NewRuneEvent(' ', mods), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// ParseSequence parses a Vim-map style string into a sequence of events.
// Ordinary characters (including spaces) each produce one rune event;
// angle-bracket groups produce special or modified keys.
//
// Example: "ihello <Esc>" is i, h, e, l, l, o, space, Escape.
func ParseSequence(spec string) ([]Event, error) {
	var events []Event

	for i := 0; i < len(spec); {
		if spec[i] == '<' {
			end := strings.IndexByte(spec[i:], '>')
			if end < 0 {
				return nil, ErrUnmatchedBracket
			}
			ev, err := Parse(spec[i : i+end+1])
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
			i += end + 1
			continue
		}

		r, size := utf8.DecodeRuneInString(spec[i:])
		events = append(events, NewRuneEvent(r, ModNone))
		i += size
	}

	return events, nil
}

// FormatSequence renders events back into Vim-map notation.
func FormatSequence(events []Event) string {
	var b strings.Builder
	for _, ev := range events {
		if ev.IsRune() && !ev.IsModified() && ev.Rune != ' ' {
			b.WriteRune(ev.Rune)
			continue
		}
		b.WriteString(ev.VimString())
	}
	return b.String()
}
