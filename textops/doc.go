// Package textops provides rune-aware string primitives: character removal,
// whitespace stripping and fixed-width chunking.
//
// Every function works on Unicode scalar values, never on bytes, so "日本語"
// has length 3 for chunking purposes. Bytes that are not valid UTF-8 count as
// one character each and are always copied through unchanged. All functions
// are pure and safe for concurrent use.
package textops
