package textops

import (
	"strings"
	"unicode/utf8"
)

// Chunk splits input into consecutive pieces of width runes. The last piece
// holds the remainder and is never empty. Pieces are slices of input, so
// joining them gives back input byte for byte.
//
// A width of zero or less returns input as the only chunk, even when input is
// empty. An empty input with a positive width returns an empty slice.
func Chunk(input string, width int) []string {
	if width <= 0 {
		return []string{input}
	}

	n := utf8.RuneCountInString(input)
	size := n / width
	if n%width != 0 {
		size++
	}
	chunks := make([]string, 0, size)
	start, count := 0, 0
	for i := range input {
		if count == width {
			chunks = append(chunks, input[start:i])
			start, count = i, 0
		}
		count++
	}
	if start < len(input) {
		chunks = append(chunks, input[start:])
	}
	return chunks
}

// ChunkWithSeparator splits input like Chunk and joins the pieces with
// separator:
//
//	ChunkWithSeparator("AEFF??00FE", 2, " ") // "AE FF ?? 00 FE"
//
// A width of zero or less, or an empty separator, returns input unchanged.
func ChunkWithSeparator(input string, width int, separator string) string {
	if width <= 0 || separator == "" {
		return input
	}
	return strings.Join(Chunk(input, width), separator)
}
