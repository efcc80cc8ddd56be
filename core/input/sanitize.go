package input

import (
	"strings"
	"unicode/utf8"
)

// CharClass is the set of characters a field keeps.
type CharClass int

const (
	Any CharClass = iota
	Digits
)

func (c CharClass) String() string {
	switch c {
	case Digits:
		return "digits"
	default:
		return "any"
	}
}

// Allows reports whether r belongs to the class.
func (c CharClass) Allows(r rune) bool {
	switch c {
	case Digits:
		return r >= '0' && r <= '9'
	default:
		return true
	}
}

// Sanitize keeps the runes of s allowed by class, in order.
func Sanitize(s string, class CharClass) string {
	if class == Any {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if class.Allows(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizePhone strips everything but the ASCII digits 0-9.
// "(555) 123-4567" becomes "5551234567".
func SanitizePhone(s string) string {
	return Sanitize(s, Digits)
}

// Complete reports whether s holds exactly n characters.
func Complete(s string, n int) bool {
	return utf8.RuneCountInString(s) == n
}
