package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates an argument is outside its accepted range.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidFormat indicates a value could not be decoded into its
	// expected type.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Matcher and configuration errors
const (
	// ErrCodeInvalidSpec indicates a wildcard spec cannot be compiled, for
	// example when the multi and single wildcard symbols are the same rune.
	ErrCodeInvalidSpec ErrorCode = "INVALID_SPEC"
	// ErrCodeInvalidConfig indicates a loaded configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
