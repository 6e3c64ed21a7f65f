package middlewares

import (
	"log/slog"
	"time"

	"github.com/hystudios/web/internal"
)

// RequestLoggerConfig configures the request logging middleware.
type RequestLoggerConfig struct {
	// SkipPaths are request paths that are never logged (health probes, assets).
	SkipPaths map[string]struct{}
}

// RequestLoggerOption configures RequestLoggerConfig.
type RequestLoggerOption func(*RequestLoggerConfig)

// WithSkipPaths excludes exact request paths from logging.
func WithSkipPaths(paths ...string) RequestLoggerOption {
	return func(cfg *RequestLoggerConfig) {
		for _, p := range paths {
			cfg.SkipPaths[p] = struct{}{}
		}
	}
}

// RequestLogger returns middleware that logs one entry per completed request
// with method, path, status, response size and duration.
// Register it after RequestID so entries carry the request_id attribute.
func RequestLogger(opts ...RequestLoggerOption) internal.Middleware {
	cfg := &RequestLoggerConfig{SkipPaths: make(map[string]struct{})}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			path := c.Request().URL.Path
			if _, skip := cfg.SkipPaths[path]; skip {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", rw.Status()),
				slog.Int64("size", rw.Size()),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			switch {
			case err != nil || rw.Status() >= 500:
				c.LogError("request completed", attrs...)
			case rw.Status() >= 400:
				c.LogWarn("request completed", attrs...)
			default:
				c.LogInfo("request completed", attrs...)
			}
			return err
		}
	}
}
