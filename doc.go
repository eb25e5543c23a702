// Package requestlog provides HTTP middleware that emits one structured
// JSON log record per request.
//
// Wrapping a handler once replaces per-route access logging: the middleware
// measures request latency, assigns or propagates a correlation ID,
// resolves the client IP through proxy headers, classifies the completed
// exchange as access or error, and writes a single compact JSON line
// through a configurable sink.
//
// # Quick Start
//
//	mw := requestlog.New(
//	    requestlog.WithEventIDHeader("X-Event-ID"),
//	)
//
//	http.ListenAndServe(":8080", mw(mux))
//
// Every request then produces a line like:
//
//	{"timestamp":"2025-01-15T10:30:00.123456Z","event_id":"9f4c...","method":"GET",
//	 "path":"/orders","client_ip":"203.0.113.1","user_agent":"curl/8.0",
//	 "time_taken_ms":12,"status_code":200,"log_type":"access","level":"INFO","error":null}
//
// # Error Payloads
//
// Handlers can attach structured error details that the middleware folds
// into the record's "error" field:
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//	    requestlog.SetErrorInfo(r.Context(), map[string]any{
//	        "code":    "UPSTREAM_TIMEOUT",
//	        "message": "upstream did not respond in time",
//	    })
//	    http.Error(w, "bad gateway", http.StatusBadGateway)
//	}
//
// The payload is consumed exactly once: the middleware clears it from the
// request state after projecting it, so a later read observes it unset.
// Source keys are renamed through a configurable mapping (default:
// code→error_code, message→error_message, stack_trace→stack_trace);
// unmapped keys are dropped and missing keys project to null.
//
// # Sinks
//
// Records are written through a [sink.Sink]. By default the middleware
// provisions a named direct sink on stdout at INFO level from the shared
// sink registry; asking for the same name again returns the same sink.
// Because emission runs on the request path, production deployments should
// prefer a queue-backed sink so slow I/O cannot stall request handling:
//
//	mw := requestlog.New(requestlog.WithQueue(1000))
//	defer sink.Default().Close() // flush buffered records on shutdown
//
// Passing an explicit sink that is not queue-backed logs a non-fatal
// advisory at construction.
//
// # Failure Behavior
//
// The logging layer never causes a request to fail. A panicking handler
// still produces a record (status defaulted to 500 when no status was
// written) before the panic continues upward unchanged. Exchanges whose
// connection is hijacked away from HTTP produce no record.
package requestlog
