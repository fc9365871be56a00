package tracking

import (
	"fmt"
	"strings"
)

// changeKind tags the TextChange variants.
type changeKind int

const (
	kindInsert changeKind = iota
	kindDeleteLeft
	kindDeleteRight
	kindCombination
)

// TextChange is a tagged union describing a normalized buffer change:
// an inserted string, a backward or forward deletion count, or a
// combination of two changes applied in order.
type TextChange struct {
	kind changeKind

	// text is the inserted text for Insert changes.
	text string

	// count is the character count for DeleteLeft and DeleteRight.
	count int

	// first and second are the children of a Combination.
	first  *TextChange
	second *TextChange
}

// NewInsert creates an Insert change.
func NewInsert(text string) TextChange {
	return TextChange{kind: kindInsert, text: text}
}

// NewDeleteLeft creates a backward-deletion change of count characters.
func NewDeleteLeft(count int) TextChange {
	return TextChange{kind: kindDeleteLeft, count: count}
}

// NewDeleteRight creates a forward-deletion change of count characters.
func NewDeleteRight(count int) TextChange {
	return TextChange{kind: kindDeleteRight, count: count}
}

// NewCombination combines two changes applied in order. Empty children
// collapse: combining with an empty change returns the other operand, so
// a Combination never holds two empty children.
func NewCombination(first, second TextChange) TextChange {
	if first.IsEmpty() {
		return second
	}
	if second.IsEmpty() {
		return first
	}
	f, s := first, second
	return TextChange{kind: kindCombination, first: &f, second: &s}
}

// IsInsert returns true for Insert changes.
func (c TextChange) IsInsert() bool {
	return c.kind == kindInsert
}

// IsDeleteLeft returns true for backward-deletion changes.
func (c TextChange) IsDeleteLeft() bool {
	return c.kind == kindDeleteLeft
}

// IsDeleteRight returns true for forward-deletion changes.
func (c TextChange) IsDeleteRight() bool {
	return c.kind == kindDeleteRight
}

// IsCombination returns true for Combination changes.
func (c TextChange) IsCombination() bool {
	return c.kind == kindCombination
}

// Insert returns the inserted text; ok is false for other variants.
func (c TextChange) Insert() (string, bool) {
	return c.text, c.kind == kindInsert
}

// DeleteLeft returns the backward-deletion count; ok is false for other
// variants.
func (c TextChange) DeleteLeft() (int, bool) {
	if c.kind != kindDeleteLeft {
		return 0, false
	}
	return c.count, true
}

// DeleteRight returns the forward-deletion count; ok is false for other
// variants.
func (c TextChange) DeleteRight() (int, bool) {
	if c.kind != kindDeleteRight {
		return 0, false
	}
	return c.count, true
}

// Combination returns the two children; ok is false for other variants.
func (c TextChange) Combination() (first, second TextChange, ok bool) {
	if c.kind != kindCombination {
		return TextChange{}, TextChange{}, false
	}
	return *c.first, *c.second, true
}

// IsEmpty returns true for a change with no effect: an empty insert or a
// zero-count deletion.
func (c TextChange) IsEmpty() bool {
	switch c.kind {
	case kindInsert:
		return c.text == ""
	case kindDeleteLeft, kindDeleteRight:
		return c.count == 0
	default:
		return false
	}
}

// Equals compares two changes structurally and recursively.
func (c TextChange) Equals(other TextChange) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case kindInsert:
		return c.text == other.text
	case kindDeleteLeft, kindDeleteRight:
		return c.count == other.count
	case kindCombination:
		return c.first.Equals(*other.first) && c.second.Equals(*other.second)
	default:
		return false
	}
}

// String returns a readable form like `Insert("ab")` or
// `Combination(DeleteLeft(2), Insert("x"))`.
func (c TextChange) String() string {
	switch c.kind {
	case kindInsert:
		return fmt.Sprintf("Insert(%q)", c.text)
	case kindDeleteLeft:
		return fmt.Sprintf("DeleteLeft(%d)", c.count)
	case kindDeleteRight:
		return fmt.Sprintf("DeleteRight(%d)", c.count)
	case kindCombination:
		var b strings.Builder
		b.WriteString("Combination(")
		b.WriteString(c.first.String())
		b.WriteString(", ")
		b.WriteString(c.second.String())
		b.WriteString(")")
		return b.String()
	default:
		return "TextChange(?)"
	}
}
