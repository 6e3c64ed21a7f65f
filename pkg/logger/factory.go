package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config holds logger configuration loaded from the environment.
type Config struct {
	// Level accepts debug, info, warn or error (case-insensitive).
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Sentry SentryConfig
}

// New creates a JSON-formatted logger with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return slog.New(WithContextAttrs(newJSONHandler(os.Stdout, slog.LevelInfo), extractors...))
}

// NewFromConfig creates a JSON logger at the configured level.
// When a Sentry DSN is configured, records are also forwarded to Sentry.
func NewFromConfig(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return newWithSentry(os.Stdout, cfg.Level, cfg.Sentry, extractors...)
}

func newJSONHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}
