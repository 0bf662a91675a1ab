package wildcard

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kbukum/stringr/errors"
	"github.com/kbukum/stringr/validation"
)

type cacheKey struct {
	pattern string
	spec    Spec
}

// Cache keeps the most recently used compiled matchers, keyed by pattern and
// spec. It is safe for concurrent use.
type Cache struct {
	matchers *lru.Cache[cacheKey, *Matcher]
	opts     []Option
}

// NewCache creates a cache holding at most size matchers. The options are
// applied to every matcher the cache compiles.
func NewCache(size int, opts ...Option) (*Cache, error) {
	if appErr := validation.New().Min("size", size, 1).Validate(); appErr != nil {
		return nil, appErr.WithDetail("size", size)
	}
	matchers, err := lru.New[cacheKey, *Matcher](size)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return &Cache{matchers: matchers, opts: opts}, nil
}

// Get returns the compiled matcher for pattern and spec, compiling it on a
// miss. Invalid specs are never cached.
func (c *Cache) Get(pattern string, spec Spec) (*Matcher, error) {
	key := cacheKey{pattern: pattern, spec: spec}
	if m, ok := c.matchers.Get(key); ok {
		return m, nil
	}

	m, err := Compile(pattern, spec, c.opts...)
	if err != nil {
		return nil, err
	}
	// Another goroutine may have compiled the same key; keep the first one.
	if prev, ok, _ := c.matchers.PeekOrAdd(key, m); ok {
		return prev, nil
	}
	return m, nil
}

// Match compiles or reuses the matcher for pattern and spec and matches input.
func (c *Cache) Match(input, pattern string, spec Spec) (bool, error) {
	m, err := c.Get(pattern, spec)
	if err != nil {
		return false, err
	}
	return m.Match(input), nil
}

// Len returns the number of cached matchers.
func (c *Cache) Len() int {
	return c.matchers.Len()
}

// Purge removes every cached matcher.
func (c *Cache) Purge() {
	c.matchers.Purge()
}
