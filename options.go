package requestlog

import (
	"net/http"

	"github.com/dmitrymomot/requestlog/pkg/sink"
)

// DefaultErrorInfoKey is the state key checked for an error payload.
const DefaultErrorInfoKey = "error_info"

// DefaultQueueCapacity is the buffer size used by WithQueue when the caller
// does not size the queue.
const DefaultQueueCapacity = 1000

// DefaultClientIPHeaders are the headers checked (in order) for the client IP.
var DefaultClientIPHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// DefaultErrorFieldMapping renames error payload keys to log field names.
var DefaultErrorFieldMapping = map[string]string{
	"code":        "error_code",
	"message":     "error_message",
	"stack_trace": "stack_trace",
}

// Config configures the request logging middleware.
type Config struct {
	ErrorInfoKey      string                             // State key holding the error payload
	ErrorFieldMapping map[string]string                  // Payload key -> log field name
	EventIDHeader     string                             // Header to source the correlation ID from
	ClientIPHeaders   []string                           // Headers checked (in order) for the client IP
	LogInfoMapping    map[string]string                  // Replaces the default base fields when set
	ExtraFields       func(*http.Request) map[string]any // Merged into the record last
	Sink              sink.Sink                          // Explicit sink; provisioned from Registry when nil
	Registry          *sink.Registry                     // Registry for the default sink
	QueueCapacity     int                                // Capacity for the default queued sink
	Queued            bool                               // Provision the default sink queue-backed
	Skipper           func(*http.Request) bool           // Requests to exclude from logging
}

// Option configures Config.
type Option func(*Config)

// WithErrorInfoKey sets the state key the middleware reads the error
// payload from. Defaults to DefaultErrorInfoKey.
func WithErrorInfoKey(key string) Option {
	return func(cfg *Config) {
		if key != "" {
			cfg.ErrorInfoKey = key
		}
	}
}

// WithErrorFieldMapping sets the payload-key to log-field rename table.
// Payload keys absent from the mapping are dropped from the record.
func WithErrorFieldMapping(mapping map[string]string) Option {
	return func(cfg *Config) {
		if len(mapping) > 0 {
			cfg.ErrorFieldMapping = mapping
		}
	}
}

// WithEventIDHeader sets the header the correlation ID is sourced from.
// When unset, or when the header is missing, a new UUID is generated.
func WithEventIDHeader(header string) Option {
	return func(cfg *Config) {
		cfg.EventIDHeader = header
	}
}

// WithClientIPHeaders sets the headers checked (in order) for the client IP.
func WithClientIPHeaders(headers ...string) Option {
	return func(cfg *Config) {
		if len(headers) > 0 {
			cfg.ClientIPHeaders = headers
		}
	}
}

// WithLogInfoMapping replaces the default method/path/client_ip/user_agent
// base fields with a projected set. Each source key is looked up in the
// request headers first, then in request attributes (method, path, host,
// proto, query, remote_addr); absent sources are skipped.
func WithLogInfoMapping(mapping map[string]string) Option {
	return func(cfg *Config) {
		cfg.LogInfoMapping = mapping
	}
}

// WithExtraFields sets a function whose result is merged into the record
// last, overriding earlier fields on key collision.
func WithExtraFields(fn func(*http.Request) map[string]any) Option {
	return func(cfg *Config) {
		cfg.ExtraFields = fn
	}
}

// WithSink sets an explicit sink. A sink that is not queue-backed triggers
// a non-fatal advisory at construction, since emission runs on the request
// path.
func WithSink(s sink.Sink) Option {
	return func(cfg *Config) {
		cfg.Sink = s
	}
}

// WithQueue provisions the default sink queue-backed with the given
// capacity. Zero or negative capacity means DefaultQueueCapacity. Ignored
// when an explicit sink is set.
func WithQueue(capacity int) Option {
	return func(cfg *Config) {
		cfg.Queued = true
		if capacity > 0 {
			cfg.QueueCapacity = capacity
		}
	}
}

// WithRegistry sets the registry the default sink is provisioned from.
// Defaults to sink.Default(). Useful for isolating sinks in tests.
func WithRegistry(r *sink.Registry) Option {
	return func(cfg *Config) {
		if r != nil {
			cfg.Registry = r
		}
	}
}

// WithSkipper sets a predicate for requests that should bypass logging
// entirely, e.g. CORS preflight. By default every request is logged.
func WithSkipper(skip func(*http.Request) bool) Option {
	return func(cfg *Config) {
		cfg.Skipper = skip
	}
}
