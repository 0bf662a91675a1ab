package validation

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/kbukum/stringr/errors"
)

// FieldError is a single failed check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator accumulates failed checks so that every problem with a spec or
// argument list is reported at once. The check methods return the receiver
// for chaining.
type Validator struct {
	fields []FieldError
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{}
}

func (v *Validator) fail(field, format string, args ...any) *Validator {
	v.fields = append(v.fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	return v
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool { return len(v.fields) > 0 }

// Errors returns the failed checks in the order they were made.
func (v *Validator) Errors() []FieldError { return v.fields }

// Validate returns nil when every check passed. Otherwise it returns an
// INVALID_INPUT error whose "fields" detail lists each failure.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}
	return fieldsError(v.fields)
}

// Check records message for field when ok is false.
func (v *Validator) Check(ok bool, field, message string) *Validator {
	if ok {
		return v
	}
	return v.fail(field, "%s", message)
}

// RuneLength checks that value holds exactly n Unicode scalar values.
// Invalid UTF-8 bytes count as one scalar each.
func (v *Validator) RuneLength(field, value string, n int) *Validator {
	if utf8.RuneCountInString(value) == n {
		return v
	}
	if n == 1 {
		return v.fail(field, "must be exactly one character")
	}
	return v.fail(field, "must be exactly %d characters", n)
}

// Min checks that value is at least minVal.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	if value >= minVal {
		return v
	}
	return v.fail(field, "must be at least %d", minVal)
}

// OneOf checks that value is one of allowed. The empty string is rejected
// like any other value outside the set.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	if slices.Contains(allowed, value) {
		return v
	}
	return v.fail(field, "must be one of: %s (got %q)", strings.Join(allowed, ", "), value)
}

func fieldsError(fields []FieldError) *errors.AppError {
	messages := make([]string, len(fields))
	for i, f := range fields {
		messages[i] = f.Field + ": " + f.Message
	}
	return errors.Validation(strings.Join(messages, "; ")).
		WithDetail("fields", fields)
}
