package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hystudios/web/pkg/logger"
)

// Server defaults. There is no per-handler timeout: outbound calls end when
// the client goes away, the write timeout fires or the server shuts down.
const (
	defaultAddr              = ":8080"
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 60 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 15 * time.Second
)

// App owns the chi router and the pieces registered on it. All
// configuration happens in New; routes cannot be added afterwards.
type App struct {
	router                  chi.Router
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	healthConfig            *healthConfig
	logger                  *slog.Logger
	middlewares             []Middleware
	handlers                []Handler
	staticRoutes            []staticRoute
}

type staticRoute struct {
	handler http.Handler
	pattern string
}

// New applies opts and registers every route.
//
//	app := web.New(
//	    web.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    web.WithHandlers(
//	        handlers.NewPages(renderer, handlers.Site{ContactEmail: "hello@hystudios.io"}),
//	        handlers.NewContact(svc),
//	    ),
//	)
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// Router returns the app as an http.Handler, for tests and for embedding.
func (a *App) Router() http.Handler {
	return a.router
}

// Run serves on addr and blocks until shutdown.
//
//	err := app.Run(":8080", web.Logger(log), web.ShutdownHook(logger.FlushSentry))
func (a *App) Run(addr string, opts ...RunOption) error {
	return newServer(addr, a.router, buildRunConfig(opts...)).run()
}

func (a *App) setupRoutes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))
	}

	// chi rejects Use after the first route.
	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	for _, sr := range a.staticRoutes {
		a.router.Mount(sr.pattern, sr.handler)
	}

	a.mountHealth()

	r := routes{app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// wrapHandler adapts h to net/http and routes its error to handleError.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError renders err with the configured ErrorHandler. Without one an
// HTTPError becomes plain text with its status and anything else a bare 500.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		c.LogWarn("error after response was written", slog.Any("error", err))
		return
	}
	if a.errorHandler != nil {
		if herr := a.errorHandler(c, err); herr != nil {
			c.LogError("error handler failed", slog.Any("error", herr))
		}
		return
	}

	if httpErr := AsHTTPError(err); httpErr != nil {
		http.Error(c.Response(), httpErr.Message, httpErr.Code)
		return
	}
	http.Error(c.Response(), "Internal Server Error", http.StatusInternalServerError)
}
