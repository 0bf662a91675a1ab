package wildcard

import (
	"fmt"
	"unicode/utf8"

	"github.com/kbukum/stringr/errors"
	"github.com/kbukum/stringr/validation"
)

// Spec selects the wildcard symbols and casing rule for a match.
type Spec struct {
	// Multi matches zero or more input characters.
	Multi rune `json:"multi" validate:"required"`
	// Single matches exactly one input character.
	Single rune `json:"single" validate:"required,nefield=Multi"`
	// IgnoreCase folds ASCII letters before comparing literals. Non-ASCII
	// letters are always compared exactly.
	IgnoreCase bool `json:"ignore_case"`
}

// DefaultSpec returns the conventional spec: '*' and '?', case-sensitive.
func DefaultSpec() Spec {
	return Spec{Multi: '*', Single: '?'}
}

// Validate reports whether the spec can be compiled. Both symbols must be
// valid, non-zero scalar values and must differ from each other.
//
// Match itself accepts any Spec; when both symbols are equal the symbol acts
// as the multi wildcard.
func (s Spec) Validate() error {
	if err := validation.Validate(s); err != nil {
		return errors.InvalidSpec(err.Error()).WithCause(err).WithDetail("spec", s.String())
	}
	v := validation.New().
		Check(utf8.ValidRune(s.Multi), "multi", "must be a valid Unicode scalar value").
		Check(utf8.ValidRune(s.Single), "single", "must be a valid Unicode scalar value")
	if appErr := v.Validate(); appErr != nil {
		return errors.InvalidSpec(appErr.Message).WithCause(appErr).WithDetail("spec", s.String())
	}
	return nil
}

// String returns a readable form of the spec.
func (s Spec) String() string {
	return fmt.Sprintf("multi=%q single=%q ignore_case=%t", s.Multi, s.Single, s.IgnoreCase)
}
