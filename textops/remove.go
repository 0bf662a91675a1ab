package textops

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RemoveChars returns input without any rune in excluded, keeping the order of
// the remaining runes. A nil or empty set returns input unchanged.
//
// Bytes that are not valid UTF-8 are not scalar values; they are never
// removed and are copied through unchanged.
func RemoveChars(input string, excluded RuneSet) string {
	if len(excluded) == 0 {
		return input
	}
	return removeFunc(input, excluded.Contains)
}

// RemoveWhitespace returns input without any Unicode whitespace, including
// tabs, newlines, no-break and ideographic spaces. Invalid UTF-8 bytes are
// kept as they are.
func RemoveWhitespace(input string) string {
	return removeFunc(input, unicode.IsSpace)
}

// removeFunc drops every scalar value for which drop reports true and copies
// everything else byte for byte. It returns input itself when nothing is
// dropped.
func removeFunc(input string, drop func(rune) bool) string {
	var b strings.Builder
	kept := 0 // input[kept:i] is pending and not yet copied to b
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		if (r == utf8.RuneError && size == 1) || !drop(r) {
			i += size
			continue
		}
		if b.Cap() == 0 {
			b.Grow(len(input) - size)
		}
		b.WriteString(input[kept:i])
		i += size
		kept = i
	}
	if kept == 0 {
		return input
	}
	b.WriteString(input[kept:])
	return b.String()
}
