package sink

import (
	"context"
	"io"
	"log/slog"
)

// Sink is a named, leveled output channel for fully-formed log lines.
// Implementations must be safe for concurrent emitters.
type Sink interface {
	// Emit writes one pre-serialized record at the given level. The message
	// is expected to be a complete line (e.g. compact JSON); sinks add a
	// trailing newline and nothing else.
	Emit(ctx context.Context, level slog.Level, msg string)
}

// Buffered is implemented by sinks that decouple emission from I/O.
// Callers emitting on a latency-sensitive path can check it to avoid
// sinks that block on the underlying write.
type Buffered interface {
	Buffered() bool
}

// Nope creates a sink that discards all output. Use it as a default when
// logging is not configured.
func Nope() Sink {
	return NewDirect("nope", io.Discard, slog.LevelInfo)
}
