// Package stringr is a small library of rune-aware string primitives.
//
// The work is done in two packages:
//
//   - textops: RemoveChars, RemoveWhitespace, Chunk and ChunkWithSeparator
//   - wildcard: glob-style matching with configurable wildcard symbols
//
// Text is a thin adapter that exposes the same operations as methods on a
// string type:
//
//	stringr.Text("AEFF??00FE").ChunkWithSeparator(2, " ") // "AE FF ?? 00 FE"
//	stringr.Text("longteststring").WildcardMatchDefault("*test*") // true
//
// The config, logger and observability packages are optional helpers for
// applications that want to load matcher defaults from a file, log, or export
// metrics. The core functions never use them.
package stringr
