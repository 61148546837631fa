// Package safecache provides a concurrency-safe, lazily initialized value
// that can be invalidated and rebuilt.
package safecache

import (
	"sync"
)

// Cache holds one value built on demand by initFunc. Get builds at most once
// per generation; Invalidate marks the value stale so the next Get rebuilds
// it. Readers that obtained the old value keep using it -- rebuilds replace
// the reference, they never mutate in place.
type Cache[T any] struct {
	mu       sync.RWMutex
	val      T
	fresh    bool
	initFunc func() (T, error)
}

func New[T any](initFunc func() (T, error)) *Cache[T] {
	return &Cache[T]{initFunc: initFunc}
}

func (c *Cache[T]) Get() (T, error) {
	c.mu.RLock()
	if c.fresh {
		defer c.mu.RUnlock()
		return c.val, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have built it between the two locks
	if c.fresh {
		return c.val, nil
	}

	val, err := c.initFunc()
	if err != nil {
		var zero T
		return zero, err
	}

	c.val = val
	c.fresh = true
	return c.val, nil
}

func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	var zero T
	c.val = zero
	c.fresh = false
	c.mu.Unlock()
}
