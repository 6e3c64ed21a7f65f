// Package internal provides the core types and implementation of the web framework.
//
// This package is internal and should not be used directly. Import "github.com/hystudios/web"
// instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates HTTP routing, middleware, health probes and graceful shutdown
//   - Context: Provides request/response access and helper methods
//   - Router: Interface handlers use to declare routes per HTTP method
//   - Handler: Interface implemented by types that declare routes on a router
//   - HandlerFunc: Signature for individual route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Renders errors returned by handlers and middleware
//   - HTTPError: Error carrying a status code and a user-facing message
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any function
// that expects a standard library context:
//
//	func (h *ContactHandler) submit(c web.Context) error {
//	    outcome := h.service.Submit(c, c.Request().Body)
//	    return c.JSON(outcome.Status, outcome)
//	}
//
// # Application Structure
//
//	app := internal.New(
//	    internal.WithHandlers(contactHandler, pagesHandler),
//	    internal.WithMiddleware(requestID, recoverer),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("mailer", check)),
//	)
//
// # Error Handling
//
// Handlers return errors instead of writing failure responses themselves.
// The configured ErrorHandler turns them into responses. Without one, an
// HTTPError is rendered as plain text with its own status and anything else
// becomes a 500. Errors returned after the response was written are only logged.
//
// # Server Lifecycle
//
// Run listens on the given address and blocks until SIGINT, SIGTERM or the
// cancellation of the context passed with WithContext. Shutdown drains the
// HTTP server and then runs the shutdown hooks in registration order. The
// write timeout (WriteTimeout, 60s by default) is the only bound on a
// request; handlers get no deadline of their own.
package internal
