package sink

import (
	"io"
	"log/slog"
	"sync"
)

// Registry provisions named sinks, returning the same handle for repeated
// requests of the same name so that provisioning twice never duplicates
// output. Inject a Registry where isolation matters (tests, embedded
// apps); Default provides process-wide reuse.
type Registry struct {
	mu    sync.Mutex
	sinks map[string]Sink
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sinks: make(map[string]Sink)}
}

// Direct returns the sink registered under name, creating a direct sink
// when absent. An existing sink is returned as-is regardless of its
// discipline: the name identifies the channel, not how it buffers.
func (r *Registry) Direct(name string, w io.Writer, level slog.Level) Sink {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sinks[name]; ok {
		return s
	}
	s := NewDirect(name, w, level)
	r.sinks[name] = s
	return s
}

// Queued returns the sink registered under name, creating a queue-backed
// sink with the given capacity when absent.
func (r *Registry) Queued(name string, w io.Writer, level slog.Level, capacity int) Sink {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sinks[name]; ok {
		return s
	}
	s := NewQueued(name, w, level, capacity)
	r.sinks[name] = s
	return s
}

// Get returns the sink registered under name.
func (r *Registry) Get(name string) (Sink, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sinks[name]
	return s, ok
}

// Register stores an externally constructed sink under name, replacing any
// existing registration.
func (r *Registry) Register(name string, s Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks[name] = s
}

// Close stops every queued sink in the registry, flushing their buffers.
// Call it during graceful shutdown, after the HTTP server has stopped
// accepting requests.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sinks {
		if q, ok := s.(*QueuedSink); ok {
			q.Stop()
		}
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}
