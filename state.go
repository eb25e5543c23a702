package requestlog

import (
	"context"
	"sync"
)

// stateKey is the context key for the per-request state bag.
type stateKey struct{}

// state is a mutable per-request key/value bag. It is where handlers
// deposit an error payload for the middleware to pick up after the
// response, mirroring a server-scoped request state.
type state struct {
	mu     sync.Mutex
	values map[string]any
}

func newState() *state {
	return &state{values: make(map[string]any)}
}

func withState(ctx context.Context, s *state) context.Context {
	return context.WithValue(ctx, stateKey{}, s)
}

func stateFrom(ctx context.Context) (*state, bool) {
	s, ok := ctx.Value(stateKey{}).(*state)
	return s, ok
}

func (s *state) set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *state) get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// take returns the value under key and clears it, so a payload is consumed
// exactly once.
func (s *state) take(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[key]
	delete(s.values, key)
	return v
}

// Set stores a value in the request's state bag. It is a no-op outside a
// request wrapped by this middleware.
func Set(ctx context.Context, key string, value any) {
	if s, ok := stateFrom(ctx); ok {
		s.set(key, value)
	}
}

// Value returns a value from the request's state bag, or nil when unset.
func Value(ctx context.Context, key string) any {
	if s, ok := stateFrom(ctx); ok {
		if v, present := s.get(key); present {
			return v
		}
	}
	return nil
}

// SetErrorInfo stores an error payload under DefaultErrorInfoKey. The
// middleware projects it into the record's "error" field and clears it
// after the exchange completes.
func SetErrorInfo(ctx context.Context, info map[string]any) {
	Set(ctx, DefaultErrorInfoKey, info)
}
