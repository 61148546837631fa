// Package matcher turns an ordered list of route patterns into one combined
// matching structure and resolves incoming paths against it.
//
// Patterns are "/"-delimited sequences of static, param (":name"), and
// trailing splat ("*") segments. Precedence is strictly first-registered-wins:
// when a path satisfies more than one pattern, the earliest registration is
// selected. There is no specificity scoring.
package matcher

import (
	"slices"
	"sync"

	"github.com/wayfind-go/wayfind/pkg/safecache"
)

type Params = map[string]string

// SplatParam is the reserved params key holding the splat remainder.
const SplatParam = "*"

// Route pairs a pattern with its handler. Duplicate patterns are allowed;
// each is tried in order.
type Route[T any] struct {
	Pattern string
	Handler T
}

// Match is the result of a successful resolution: the originating pattern,
// its handler, and the extracted parameter values. Params is nil when the
// pattern has no param or splat segments.
type Match[T any] struct {
	Pattern string
	Handler T
	Params  Params
}

// Matcher holds an ordered route table and a lazily (re)built compiled form.
// Registering invalidates the compiled form; the next Match rebuilds it once.
// The compiled form is immutable, so any number of goroutines may call Match
// concurrently; matches in flight during a rebuild complete against the old
// instance.
type Matcher[T any] struct {
	mu      sync.Mutex
	entries []*entry[T]
	cache   *safecache.Cache[*compiled[T]]
}

func New[T any]() *Matcher[T] {
	m := new(Matcher[T])
	m.cache = safecache.New(func() (*compiled[T], error) {
		m.mu.Lock()
		entries := slices.Clone(m.entries)
		m.mu.Unlock()
		return compileEntries(entries), nil
	})
	return m
}

// Compile builds a matcher from a complete route table in one shot. An empty
// table is not an error; it yields a matcher that never matches anything.
func Compile[T any](routes []Route[T]) (*Matcher[T], error) {
	m := New[T]()
	for _, route := range routes {
		if err := m.Register(route.Pattern, route.Handler); err != nil {
			return nil, err
		}
	}
	m.cache.Get() // eager build; cannot fail once every pattern has parsed
	return m, nil
}

// Register appends a route to the table. Returns a *ConstructionError for a
// non-final splat segment or a parameter name repeated within the pattern.
func (m *Matcher[T]) Register(pattern string, handler T) error {
	segments, err := ParsePattern(pattern)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.entries = append(m.entries, &entry[T]{
		pattern:  pattern,
		segments: segments,
		handler:  handler,
	})
	m.mu.Unlock()

	m.cache.Invalidate()
	return nil
}

// Match resolves a path against the compiled table. A miss is not an error:
// it returns (nil, false). Matching is deterministic and side-effect free.
func (m *Matcher[T]) Match(path string) (*Match[T], bool) {
	c, err := m.cache.Get()
	if err != nil {
		return nil, false
	}
	return c.match(path)
}

// Patterns returns the registered patterns in registration order.
func (m *Matcher[T]) Patterns() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	patterns := make([]string, len(m.entries))
	for i, ent := range m.entries {
		patterns[i] = ent.pattern
	}
	return patterns
}
