// Package web is the HTTP framework behind the Hudson Yards Studios site.
//
// It is a thin orchestration layer over chi: handlers declare routes on a
// [Router], return errors instead of writing failure responses, and one
// [ErrorHandler] renders those errors. The app serves the landing page,
// static assets, health probes and the contact relay endpoint.
//
// # Quick Start
//
//	app := web.New(
//	    web.WithLogger("site", middlewares.RequestIDExtractor()),
//	    web.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	        middlewares.Recover(),
//	    ),
//	    web.WithHandlers(
//	        handlers.NewPages(renderer, handlers.Site{ContactEmail: "hello@hystudios.io"}),
//	        handlers.NewContact(svc, cors),
//	    ),
//	    web.WithErrorHandler(handlers.ErrorHandler),
//	    web.WithHealthChecks(web.WithReadinessCheck("mailer", svc.Healthcheck)),
//	)
//
//	if err := app.Run(":8080", web.Logger(log), web.WriteTimeout(time.Minute)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface and receive their dependencies
// through constructors:
//
//	type ContactHandler struct {
//	    service *contact.Service
//	}
//
//	func (h *ContactHandler) Routes(r web.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
//
// # Shutdown
//
// Run blocks until SIGINT or SIGTERM, drains in-flight requests within the
// shutdown timeout and then runs shutdown hooks in registration order.
package web
