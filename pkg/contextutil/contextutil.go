// Package contextutil provides typed stores for request-scoped values.
package contextutil

import (
	"context"
	"net/http"
)

// Store reads and writes one typed value on a request context under a
// private key. Attaching a value produces a new request; nothing shared is
// mutated.
type Store[T any] struct {
	key *storeKey
}

type storeKey struct {
	name string
}

func NewStore[T any](name string) *Store[T] {
	return &Store[T]{key: &storeKey{name: name}}
}

// With returns a shallow copy of r whose context carries val.
func (s *Store[T]) With(r *http.Request, val T) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), s.key, val))
}

func (s *Store[T]) From(r *http.Request) (T, bool) {
	return s.FromContext(r.Context())
}

func (s *Store[T]) FromContext(ctx context.Context) (T, bool) {
	val, ok := ctx.Value(s.key).(T)
	return val, ok
}
