package requestlog

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dmitrymomot/requestlog/pkg/sink"
)

// SinkName is the name under which the default sink is provisioned.
const SinkName = "request-logger"

// New returns middleware that emits exactly one JSON log record per
// intercepted request. The record is written through the configured sink
// after the wrapped handler returns, on every exit path: a handler panic
// still produces a record (status defaulted to 500 when no status was
// written) before the panic continues upward unchanged.
//
// Exchanges whose connection is hijacked away from HTTP, and requests
// matched by the configured skipper, produce no record.
func New(opts ...Option) func(http.Handler) http.Handler {
	cfg := &Config{
		ErrorInfoKey:      DefaultErrorInfoKey,
		ErrorFieldMapping: DefaultErrorFieldMapping,
		ClientIPHeaders:   DefaultClientIPHeaders,
		QueueCapacity:     DefaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	out := cfg.Sink
	if out == nil {
		reg := cfg.Registry
		if reg == nil {
			reg = sink.Default()
		}
		if cfg.Queued {
			out = reg.Queued(SinkName, os.Stdout, slog.LevelInfo, cfg.QueueCapacity)
		} else {
			out = reg.Direct(SinkName, os.Stdout, slog.LevelInfo)
		}
	} else if b, ok := out.(sink.Buffered); !ok || !b.Buffered() {
		// Emission runs inside request handling; a synchronous sink stalls
		// the request while it writes.
		slog.Warn("requestlog: sink is not queue-backed, emission will block request handling")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skipper != nil && cfg.Skipper(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			bag := newState()
			r = r.WithContext(withState(r.Context(), bag))
			rw := newResponseWriter(w)

			record := map[string]any{
				"timestamp": start.UTC().Format(timestampLayout),
				"event_id":  resolveEventID(r, cfg.EventIDHeader),
			}
			if len(cfg.LogInfoMapping) > 0 {
				projectLogInfo(record, r, cfg.LogInfoMapping)
			} else {
				record["method"] = r.Method
				record["path"] = r.URL.Path
				record["client_ip"] = resolveClientIP(r, cfg.ClientIPHeaders)
				record["user_agent"] = headerOrNil(r, "User-Agent")
			}

			defer func() {
				rec := recover()

				if rw.Hijacked() {
					// The exchange left HTTP; nothing to log.
					if rec != nil {
						panic(rec)
					}
					return
				}

				status := rw.Status()
				if rec != nil && !rw.Written() {
					status = http.StatusInternalServerError
				}

				level := slog.LevelInfo
				logType := "access"
				if status >= http.StatusBadRequest {
					level = slog.LevelError
					logType = "error"
				}

				record["time_taken_ms"] = time.Since(start).Milliseconds()
				record["status_code"] = status
				record["log_type"] = logType
				record["level"] = level.String()
				record["error"] = projectError(bag.take(cfg.ErrorInfoKey), cfg.ErrorFieldMapping)

				if cfg.ExtraFields != nil {
					for k, v := range cfg.ExtraFields(r) {
						record[k] = v
					}
				}

				// The logging layer must never fail the request: an
				// unencodable record is dropped with an advisory.
				if line, err := encodeRecord(record); err != nil {
					slog.Warn("requestlog: dropping unencodable record", "error", err)
				} else {
					out.Emit(r.Context(), level, line)
				}

				if rec != nil {
					panic(rec)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
