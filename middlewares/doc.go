// Package middlewares provides HTTP middleware for web applications.
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing. It reuses an
// upstream X-Request-ID, X-Correlation-ID or CF-Ray header when present and
// generates a UUIDv4 otherwise. The ID is echoed in the X-Request-ID response header.
//
// Use RequestIDExtractor() with WithLogger for automatic request_id in all logs:
//
//	app := web.New(
//	    web.WithLogger("site", middlewares.RequestIDExtractor()),
//	    web.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover catches panics and converts them to a *PanicError handled by the
// app's ErrorHandler:
//
//	web.WithErrorHandler(func(c web.Context, err error) error {
//	    if _, ok := middlewares.AsPanicError(err); ok {
//	        return c.JSON(500, map[string]any{"ok": false, "error": "Failed to send."})
//	    }
//	    ...
//	})
//
// # CORS
//
// CORS handles Cross-Origin Resource Sharing headers and answers preflight
// requests with 204:
//
//	middlewares.CORS(
//	    middlewares.WithAllowOrigins("https://hystudios.io", "https://www.hystudios.io"),
//	)
//
// # Request Logger
//
// RequestLogger writes one entry per request with method, path, status, size
// and duration. Server errors are logged at error level, client errors at warn.
//
// # Recommended Middleware Order
//
//	web.WithMiddleware(
//	    middlewares.RequestID(),     // First: assign ID for all subsequent logging
//	    middlewares.RequestLogger(), // Second: sees the final status
//	    middlewares.Recover(),       // Third: catch panics from handlers
//	)
package middlewares
