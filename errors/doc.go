// Package errors provides the structured error type used by stringr's
// compile and configuration entry points.
//
// The core text and matching functions never fail; errors only surface when
// a caller compiles a wildcard spec, sizes a cache, or loads configuration.
package errors
