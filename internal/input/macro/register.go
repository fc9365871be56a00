package macro

import "unicode"

// Register name ranges.
const (
	// MinLetterRegister is the first valid letter register.
	MinLetterRegister = 'a'
	// MaxLetterRegister is the last valid letter register.
	MaxLetterRegister = 'z'
	// MinDigitRegister is the first valid digit register.
	MinDigitRegister = '0'
	// MaxDigitRegister is the last valid digit register.
	MaxDigitRegister = '9'
)

// IsValidName returns true if r names a register: a-z, A-Z, or 0-9.
// Uppercase names address the same storage as their lowercase
// counterpart but select append semantics.
func IsValidName(r rune) bool {
	return IsLetterName(r) || IsDigitName(r) || IsAppendName(r)
}

// IsLetterName returns true if r is a lowercase letter register (a-z).
func IsLetterName(r rune) bool {
	return r >= MinLetterRegister && r <= MaxLetterRegister
}

// IsDigitName returns true if r is a digit register (0-9).
func IsDigitName(r rune) bool {
	return r >= MinDigitRegister && r <= MaxDigitRegister
}

// IsAppendName returns true if r is an uppercase letter (A-Z), which
// appends to the corresponding lowercase register.
func IsAppendName(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// NormalizeName converts a register name to its storage form: uppercase
// letters map to their lowercase target. Invalid names return 0.
func NormalizeName(r rune) rune {
	if IsAppendName(r) {
		return unicode.ToLower(r)
	}
	if IsLetterName(r) || IsDigitName(r) {
		return r
	}
	return 0
}
