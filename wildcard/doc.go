// Package wildcard implements glob-style wildcard matching over Unicode
// scalar values.
//
// A pattern may contain two wildcard symbols: a multi wildcard that matches
// any run of zero or more characters, and a single wildcard that matches
// exactly one character. Every other pattern character matches itself,
// optionally ignoring ASCII case. The pattern must match the whole input;
// there is no substring matching, escaping, grouping or character classes.
//
// Matching runs a bottom-up dynamic program over an (m+1)×(n+1) table, where
// m and n are the rune counts of input and pattern, so ambiguous patterns such
// as "*a*a*a" never backtrack exponentially.
//
// # Quick Start
//
//	wildcard.MatchDefault("longteststring", "*test*")          // true
//	wildcard.MatchDefault("longteststring", "l?ngt?st?tring")  // true
//
//	spec := wildcard.Spec{Multi: '%', Single: '_', IgnoreCase: true}
//	wildcard.Match("README.md", "read%._d", spec)               // true
//
// # Compiled Matchers
//
// When one pattern is tested against many inputs, Compile validates the spec
// once and keeps the decoded pattern:
//
//	m, err := wildcard.Compile("*.log", wildcard.DefaultSpec())
//	if err != nil {
//	    return err
//	}
//	kept := m.Filter([]string{"app.log", "app.txt"}) // ["app.log"]
//
// A Matcher is immutable and safe for concurrent use. Cache keeps a bounded
// LRU set of compiled matchers keyed by pattern and spec.
package wildcard
