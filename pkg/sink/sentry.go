package sink

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which record levels are mirrored to Sentry
	// (e.g. slog.LevelError to send only error records).
	MinLevel slog.Level
}

// NewWithSentry creates a direct sink that writes raw lines to stdout and
// mirrors records at MinLevel and above to Sentry. If DSN is empty, only
// stdout output is enabled, so the same wiring works in local dev.
func NewWithSentry(name string, cfg SentryConfig) Sink {
	raw := newRawHandler(os.Stdout, slog.LevelInfo)

	// If no DSN, fall back to stdout only
	if cfg.DSN == "" {
		return &DirectSink{name: name, log: slog.New(raw)}
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		// Graceful degradation: keep the stdout path if Sentry init fails
		slog.Default().Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return &DirectSink{name: name, log: slog.New(raw)}
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel, // Errors create Issues in Sentry
		LogLevel:   logLevel,   // Logs stored for context/search
	}.NewSentryHandler(context.Background())

	return &DirectSink{name: name, log: slog.New(newMultiHandler(raw, sentryHandler))}
}
