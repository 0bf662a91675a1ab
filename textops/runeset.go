package textops

// RuneSet is a set of runes. The zero value is an empty set.
type RuneSet map[rune]struct{}

// NewRuneSet returns a set holding runes.
func NewRuneSet(runes ...rune) RuneSet {
	s := make(RuneSet, len(runes))
	for _, r := range runes {
		s[r] = struct{}{}
	}
	return s
}

// RuneSetOf returns the set of runes appearing in s.
func RuneSetOf(s string) RuneSet {
	set := make(RuneSet, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether r is in the set.
func (s RuneSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}
