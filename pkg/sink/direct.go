package sink

import (
	"context"
	"io"
	"log/slog"
)

// DirectSink formats and writes every record synchronously on the caller's
// goroutine.
type DirectSink struct {
	name string
	log  *slog.Logger
}

// NewDirect creates a direct sink writing to w. Records below level are
// dropped.
func NewDirect(name string, w io.Writer, level slog.Level) *DirectSink {
	return &DirectSink{name: name, log: slog.New(newRawHandler(w, level))}
}

// Name returns the sink's registry name.
func (s *DirectSink) Name() string { return s.name }

// Emit writes one record at the given level.
func (s *DirectSink) Emit(ctx context.Context, level slog.Level, msg string) {
	s.log.Log(ctx, level, msg)
}

// Buffered reports that emission blocks on the underlying write.
func (s *DirectSink) Buffered() bool { return false }
