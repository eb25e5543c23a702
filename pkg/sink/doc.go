// Package sink provides named, leveled output channels for pre-formatted
// log lines.
//
// A Sink accepts one fully-formed message per call and writes it with no
// added decoration: the requestlog middleware serializes each record to
// JSON before emission, so sinks only move bytes. Two disciplines are
// provided:
//
//   - Direct: every emission formats and writes synchronously on the
//     caller's goroutine.
//   - Queued: emission enqueues onto a bounded buffer drained by a
//     background goroutine; a full buffer blocks the emitter rather than
//     dropping the record. Call Stop (or Registry.Close) during shutdown to
//     flush buffered records.
//
// Sinks are provisioned through a Registry keyed by name: asking for the
// same name twice returns a handle to the same underlying sink, so
// repeated provisioning never duplicates output. The package-level Default
// registry provides process-wide reuse; tests should inject their own
// Registry (or use Capture) for isolation.
//
// NewWithSentry builds a sink that additionally mirrors warning and error
// records to Sentry, degrading gracefully to stdout-only when no DSN is
// configured.
package sink
