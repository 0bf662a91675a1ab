package wildcard

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/kbukum/stringr/logger"
	"github.com/kbukum/stringr/observability"
)

// cancelCheckInterval is how many inputs a parallel worker matches between
// context checks.
const cancelCheckInterval = 64

// Option configures a Matcher at compile time.
type Option func(*Matcher)

// WithLogger sets the logger used for compile-time debug output.
func WithLogger(l *logger.Logger) Option {
	return func(m *Matcher) {
		if l != nil {
			m.log = l
		}
	}
}

// WithMetrics records every match and filter call on metrics.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(m *Matcher) {
		m.metrics = metrics
	}
}

// Matcher is a pattern compiled against a validated Spec. It is immutable and
// safe for concurrent use.
type Matcher struct {
	pattern string
	runes   []rune
	spec    Spec

	log     *logger.Logger
	metrics *observability.Metrics
}

// Compile validates spec and decodes pattern once so it can be matched
// against many inputs.
func Compile(pattern string, spec Spec, opts ...Option) (*Matcher, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	m := &Matcher{
		pattern: pattern,
		runes:   []rune(pattern),
		spec:    spec,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.log.Debug("pattern compiled", logger.Fields(
		logger.FieldPattern, pattern,
		logger.FieldPatternLen, len(m.runes),
		logger.FieldMulti, string(spec.Multi),
		logger.FieldSingle, string(spec.Single),
		logger.FieldIgnoreCase, spec.IgnoreCase,
	))

	return m, nil
}

// MustCompile is like Compile but panics if the spec is invalid.
func MustCompile(pattern string, spec Spec, opts ...Option) *Matcher {
	m, err := Compile(pattern, spec, opts...)
	if err != nil {
		panic(fmt.Sprintf("wildcard: Compile(%q): %v", pattern, err))
	}
	return m
}

// Pattern returns the source pattern.
func (m *Matcher) Pattern() string { return m.pattern }

// Spec returns the spec the pattern was compiled with.
func (m *Matcher) Spec() Spec { return m.spec }

// String returns the source pattern.
func (m *Matcher) String() string { return m.pattern }

// Match reports whether the pattern matches all of input.
func (m *Matcher) Match(input string) bool {
	return m.MatchContext(context.Background(), input)
}

// MatchContext is Match with a context for metric recording.
func (m *Matcher) MatchContext(ctx context.Context, input string) bool {
	if m.metrics == nil {
		matched, _ := matchRunes([]rune(input), m.runes, m.spec)
		return matched
	}

	start := time.Now()
	matched, cells := matchRunes([]rune(input), m.runes, m.spec)
	m.metrics.RecordMatch(ctx, matched, cells, time.Since(start))
	return matched
}

// Filter returns the inputs that match, in their original order. It returns
// nil when nothing matches.
func (m *Matcher) Filter(inputs []string) []string {
	ctx := context.Background()
	var kept []string
	for _, in := range inputs {
		if m.MatchContext(ctx, in) {
			kept = append(kept, in)
		}
	}
	m.metrics.RecordFilter(ctx, "serial", len(inputs), len(kept))
	return kept
}

// FilterParallel returns the same result as Filter, spreading the work over
// runtime.NumCPU() goroutines. The inputs are split into contiguous chunks and
// the results are merged in order. If ctx is done before every chunk has been
// matched, FilterParallel returns ctx.Err().
//
// For short input lists the goroutine overhead exceeds the savings; use
// Filter instead.
func (m *Matcher) FilterParallel(ctx context.Context, inputs []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, nil
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanFilterParallel)
	defer span.End()

	numWorkers := runtime.NumCPU()
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(inputs) {
		numWorkers = len(inputs)
	}

	chunkSize := (len(inputs) + numWorkers - 1) / numWorkers
	var chunks [][]string
	for i := 0; i < len(inputs); i += chunkSize {
		end := i + chunkSize
		if end > len(inputs) {
			end = len(inputs)
		}
		chunks = append(chunks, inputs[i:end])
	}

	observability.SetSpanAttribute(ctx, observability.AttrPattern, m.pattern)
	observability.SetSpanAttribute(ctx, observability.AttrInputs, len(inputs))
	observability.SetSpanAttribute(ctx, observability.AttrWorkers, len(chunks))
	observability.SetSpanAttribute(ctx, observability.AttrMulti, string(m.spec.Multi))
	observability.SetSpanAttribute(ctx, observability.AttrSingle, string(m.spec.Single))
	observability.SetSpanAttribute(ctx, observability.AttrIgnoreCase, m.spec.IgnoreCase)

	results := make([][]string, len(chunks))
	finished := make([]bool, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i, c := range chunks {
		go func(idx int, chunk []string) {
			defer wg.Done()
			var kept []string
			for j, in := range chunk {
				if j%cancelCheckInterval == 0 && ctx.Err() != nil {
					return
				}
				if m.MatchContext(ctx, in) {
					kept = append(kept, in)
				}
			}
			results[idx] = kept
			finished[idx] = true
		}(i, c)
	}
	wg.Wait()

	for _, ok := range finished {
		if !ok {
			err := ctx.Err()
			observability.SetSpanError(ctx, err)
			return nil, err
		}
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	observability.SetSpanAttribute(ctx, observability.AttrKept, total)
	m.metrics.RecordFilter(ctx, "parallel", len(inputs), total)
	if total == 0 {
		return nil, nil
	}

	merged := make([]string, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged, nil
}
