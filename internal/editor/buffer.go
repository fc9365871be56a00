package editor

import (
	"strings"
	"unicode/utf8"
)

// Text returns the full buffer contents.
func (e *Editor) Text() string {
	return e.text
}

// Lines returns the buffer split into lines.
func (e *Editor) Lines() []string {
	return strings.Split(e.text, "\n")
}

// Caret returns the caret's byte offset.
func (e *Editor) Caret() int {
	return e.caret
}

// CaretLineCol returns the caret position as (line, column) in bytes.
func (e *Editor) CaretLineCol() (line, col int) {
	for i := 0; i < e.caret && i < len(e.text); i++ {
		if e.text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	if e.caret > len(e.text) {
		col += e.caret - len(e.text)
	}
	return line, col
}

// SetText replaces the buffer contents and resets the caret. History and
// the pending change are not touched; callers use this for setup.
func (e *Editor) SetText(text string) {
	e.text = text
	e.caret = 0
}

// lineStart returns the offset of the first byte of the line containing
// offset.
func (e *Editor) lineStart(offset int) int {
	if offset > len(e.text) {
		offset = len(e.text)
	}
	i := strings.LastIndexByte(e.text[:offset], '\n')
	return i + 1
}

// lineEnd returns the offset just past the last character of the line
// containing offset (the newline's offset, or len(text)).
func (e *Editor) lineEnd(offset int) int {
	if offset > len(e.text) {
		offset = len(e.text)
	}
	i := strings.IndexByte(e.text[offset:], '\n')
	if i < 0 {
		return len(e.text)
	}
	return offset + i
}

// runeAt returns the rune starting at offset.
func (e *Editor) runeAt(offset int) (rune, int) {
	if offset < 0 || offset >= len(e.text) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(e.text[offset:])
}

// runeBefore returns the rune ending at offset.
func (e *Editor) runeBefore(offset int) (rune, int) {
	if offset <= 0 || offset > len(e.text) {
		return 0, 0
	}
	return utf8.DecodeLastRuneInString(e.text[:offset])
}

// splice replaces length bytes at start without recording anything.
func (e *Editor) splice(start, length int, insert string) string {
	deleted := e.text[start : start+length]
	e.text = e.text[:start] + insert + e.text[start+length:]
	return deleted
}

// Replace implements history.Applier: a raw substitution used by undo
// and redo, bypassing history recording and change tracking.
func (e *Editor) Replace(start, length int, text string) error {
	if start < 0 || start+length > len(e.text) {
		return errStaleOperation
	}
	e.splice(start, length, text)
	return nil
}

// SetCaret implements history.Applier.
func (e *Editor) SetCaret(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(e.text) {
		offset = len(e.text)
	}
	e.caret = offset
}
