package sink

import (
	"context"
	"log/slog"
	"sync"
)

// Capture is an in-memory sink that records every emitted line. It is
// intended for tests that assert on log output.
type Capture struct {
	mu      sync.Mutex
	entries []CapturedEntry
}

// CapturedEntry is one recorded emission.
type CapturedEntry struct {
	Level   slog.Level
	Message string
}

// NewCapture creates an empty capture sink.
func NewCapture() *Capture {
	return &Capture{}
}

// Emit records the message and level.
func (c *Capture) Emit(_ context.Context, level slog.Level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, CapturedEntry{Level: level, Message: msg})
}

// Buffered reports true so test wiring does not trip the blocking-sink
// advisory.
func (c *Capture) Buffered() bool { return true }

// Entries returns a copy of everything emitted so far.
func (c *Capture) Entries() []CapturedEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CapturedEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lines returns the emitted messages in order.
func (c *Capture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Message
	}
	return out
}

// Reset discards everything recorded so far.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
