// Package logger builds the JSON slog loggers used by the site, with
// request-scoped attributes and optional Sentry forwarding.
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of the logging context. The
// site registers middlewares.RequestIDExtractor so every line logged while
// serving a request carries its request_id:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(r.Context(), "contact: email sent", slog.String("email_id", id))
//	// {"level":"INFO","msg":"contact: email sent","email_id":"...","request_id":"..."}
//
// Returning false skips the attribute for that record.
//
// # Configuration
//
// Config carries env tags for LOG_LEVEL, SENTRY_DSN, SENTRY_ENVIRONMENT and
// SENTRY_MIN_LEVEL and can be parsed with caarlos0/env:
//
//	var cfg logger.Config
//	if err := env.Parse(&cfg); err != nil { ... }
//	log := logger.NewFromConfig(cfg, requestIDExtractor)
//
// If SENTRY_DSN is empty, the logger gracefully falls back to stdout-only logging,
// making it safe to use the same code path in development and production.
//
// # Context Extractors
//
// A ContextExtractor is a function that extracts a log attribute from context:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors are called on every log call, ensuring fresh values for request-scoped data.
// Return false from the extractor to skip adding the attribute for that log entry.
//
// # Wrapping Handlers
//
// WithContextAttrs adds the same extraction to any slog.Handler:
//
//	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	log := slog.New(logger.WithContextAttrs(h, extractors...))
//
// When Sentry is configured, records go to stdout and Sentry through an
// internal tee handler. Warnings and errors are stored as Sentry logs and
// errors also open issues. A failed sentry.Init falls back to stdout only.
package logger
