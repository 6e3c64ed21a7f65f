package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

const defaultFlushTimeout = 2 * time.Second

// ErrSentryFlush is returned when buffered Sentry events could not be delivered in time.
var ErrSentryFlush = errors.New("logger: sentry flush timed out")

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"warn"`
}

// NewWithSentry creates a logger that sends logs to both stdout and Sentry.
// If DSN is empty, only stdout logging is enabled (graceful fallback for local dev).
// Context extractors are applied to logs sent to both destinations.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	return newWithSentry(os.Stdout, slog.LevelInfo, cfg, extractors...)
}

func newWithSentry(w io.Writer, level slog.Leveler, cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdoutHandler := newJSONHandler(w, level)

	if cfg.DSN == "" {
		return slog.New(WithContextAttrs(stdoutHandler, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdoutHandler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(WithContextAttrs(stdoutHandler, extractors...))
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

	combinedHandler := tee{stdoutHandler, sentryHandler}

	// Decorate the combined handler so both destinations get extracted attributes.
	return slog.New(WithContextAttrs(combinedHandler, extractors...))
}

// FlushSentry waits for buffered Sentry events to be delivered.
// It matches the server shutdown hook signature and is a no-op when Sentry
// was never initialized.
func FlushSentry(ctx context.Context) error {
	if sentry.CurrentHub().Client() == nil {
		return nil
	}

	timeout := defaultFlushTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if !sentry.Flush(timeout) {
		return ErrSentryFlush
	}
	return nil
}
