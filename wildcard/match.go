package wildcard

// Match reports whether pattern, read under spec, matches all of input.
// Both strings are decoded into runes first, so multi-byte characters count as
// one position each. Invalid UTF-8 bytes decode to U+FFFD one byte at a time.
func Match(input, pattern string, spec Spec) bool {
	return MatchRunes([]rune(input), []rune(pattern), spec)
}

// MatchDefault is Match with DefaultSpec: '*' and '?', case-sensitive.
func MatchDefault(input, pattern string) bool {
	return Match(input, pattern, DefaultSpec())
}

// MatchRunes reports whether pattern matches all of input under spec.
// It never fails and never modifies its arguments.
func MatchRunes(input, pattern []rune, spec Spec) bool {
	matched, _ := matchRunes(input, pattern, spec)
	return matched
}

// matchRunes runs the DP and also returns the table size.
func matchRunes(input, pattern []rune, spec Spec) (bool, int) {
	m, n := len(input), len(pattern)
	t := newTable(m+1, n+1)

	t.set(0, 0, true)
	// An empty input is only matched by a prefix made entirely of multi wildcards.
	for j := 1; j <= n; j++ {
		if pattern[j-1] == spec.Multi {
			t.set(0, j, t.at(0, j-1))
		}
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			p := pattern[j-1]
			switch {
			case p == spec.Multi:
				// Either the wildcard matches nothing more, or it absorbs input[i-1].
				t.set(i, j, t.at(i, j-1) || t.at(i-1, j))
			case p == spec.Single:
				t.set(i, j, t.at(i-1, j-1))
			default:
				t.set(i, j, t.at(i-1, j-1) && runesEqual(input[i-1], p, spec.IgnoreCase))
			}
		}
	}

	return t.at(m, n), t.size()
}

// runesEqual compares two runes, folding only ASCII letters when ignoreCase is set.
func runesEqual(a, b rune, ignoreCase bool) bool {
	if a == b {
		return true
	}
	return ignoreCase && lowerASCII(a) == lowerASCII(b)
}

func lowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
