package sink

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// DefaultCapacity is the default number of pending records a queued sink
// holds before emitters block.
const DefaultCapacity = 1000

// entry carries one pre-formatted record through the queue.
type entry struct {
	level slog.Level
	msg   string
}

// QueuedSink decouples emission from I/O: Emit enqueues onto a bounded
// buffer consumed by a single background drain goroutine. A full buffer
// blocks the emitter rather than dropping the record, trading latency for
// durability.
type QueuedSink struct {
	name  string
	level slog.Level
	queue chan entry
	out   *slog.Logger
	done  chan struct{}
	stop  sync.Once
}

// NewQueued creates a queue-backed sink writing to w and starts its drain
// goroutine. Zero or negative capacity means DefaultCapacity.
//
// Call Stop during shutdown: records still buffered when the process exits
// without Stop are lost.
func NewQueued(name string, w io.Writer, level slog.Level, capacity int) *QueuedSink {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &QueuedSink{
		name:  name,
		level: level,
		queue: make(chan entry, capacity),
		out:   slog.New(newRawHandler(w, level)),
		done:  make(chan struct{}),
	}
	go s.drain()
	return s
}

// Name returns the sink's registry name.
func (s *QueuedSink) Name() string { return s.name }

// Emit enqueues one record, blocking while the buffer is full. Emit must
// not be called after Stop.
func (s *QueuedSink) Emit(_ context.Context, level slog.Level, msg string) {
	if level < s.level {
		return
	}
	s.queue <- entry{level: level, msg: msg}
}

// Buffered reports that emission is decoupled from the underlying write.
func (s *QueuedSink) Buffered() bool { return true }

// Stop flushes buffered records and terminates the drain goroutine. It
// blocks until the last buffered record has been written and is safe to
// call more than once.
func (s *QueuedSink) Stop() {
	s.stop.Do(func() {
		close(s.queue)
		<-s.done
	})
}

// drain owns the consuming end of the queue and performs the actual writes.
func (s *QueuedSink) drain() {
	defer close(s.done)
	for e := range s.queue {
		s.out.Log(context.Background(), e.level, e.msg)
	}
}
