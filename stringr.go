package stringr

import (
	"github.com/kbukum/stringr/textops"
	"github.com/kbukum/stringr/wildcard"
)

// Text is a string with the textops and wildcard operations as methods.
// Each method forwards to the package function of the same name.
type Text string

// String returns the underlying string.
func (t Text) String() string { return string(t) }

// RemoveChars returns t without any rune in excluded.
func (t Text) RemoveChars(excluded textops.RuneSet) Text {
	return Text(textops.RemoveChars(string(t), excluded))
}

// RemoveWhitespace returns t without Unicode whitespace.
func (t Text) RemoveWhitespace() Text {
	return Text(textops.RemoveWhitespace(string(t)))
}

// Chunk splits t into pieces of width runes.
func (t Text) Chunk(width int) []string {
	return textops.Chunk(string(t), width)
}

// ChunkWithSeparator splits t into pieces of width runes joined by separator.
func (t Text) ChunkWithSeparator(width int, separator string) Text {
	return Text(textops.ChunkWithSeparator(string(t), width, separator))
}

// WildcardMatch reports whether pattern matches all of t, using multi and
// single as the wildcard symbols.
func (t Text) WildcardMatch(pattern string, multi, single rune, ignoreCase bool) bool {
	return wildcard.Match(string(t), pattern, wildcard.Spec{
		Multi:      multi,
		Single:     single,
		IgnoreCase: ignoreCase,
	})
}

// WildcardMatchDefault reports whether pattern matches all of t using '*' and
// '?', case-sensitive.
func (t Text) WildcardMatchDefault(pattern string) bool {
	return wildcard.MatchDefault(string(t), pattern)
}
