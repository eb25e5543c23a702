package sink

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// rawHandler is a slog.Handler that writes record messages verbatim, one
// per line, with no timestamps, levels, or attributes. The message is
// expected to be fully formed already.
type rawHandler struct {
	mu    sync.Mutex
	w     io.Writer
	level slog.Level
}

func newRawHandler(w io.Writer, level slog.Level) *rawHandler {
	return &rawHandler{w: w, level: level}
}

func (h *rawHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *rawHandler) Handle(_ context.Context, rec slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, rec.Message+"\n")
	return err
}

// WithAttrs returns the handler unchanged: raw messages carry their own
// fields.
func (h *rawHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

// WithGroup returns the handler unchanged for the same reason.
func (h *rawHandler) WithGroup(string) slog.Handler { return h }
