// Command site serves the Hudson Yards Studios landing page and the contact relay.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hystudios/web"
	"github.com/hystudios/web/assets"
	"github.com/hystudios/web/handlers"
	"github.com/hystudios/web/middlewares"
	"github.com/hystudios/web/pkg/contact"
	"github.com/hystudios/web/pkg/logger"
	"github.com/hystudios/web/pkg/mailer/resend"
	"github.com/hystudios/web/pkg/page"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "site: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.NewFromConfig(cfg.Log, middlewares.RequestIDExtractor())

	app, err := newApp(cfg, log)
	if err != nil {
		return err
	}

	return app.Run(cfg.Addr,
		web.Logger(log),
		web.ShutdownTimeout(cfg.ShutdownTimeout),
		web.WriteTimeout(cfg.WriteTimeout),
		web.ShutdownHook(logger.FlushSentry),
	)
}

func newApp(cfg Config, log *slog.Logger) (*web.App, error) {
	sender, err := resend.New(cfg.Resend)
	if err != nil {
		return nil, err
	}

	svc := contact.NewService(cfg.Contact, sender, log)
	if err := cfg.Contact.Validate(); err != nil {
		// The site still serves pages; the endpoint and readiness report the problem.
		log.Warn("contact relay disabled: RESEND_API_KEY, CONTACT_TO_EMAIL and CONTACT_FROM_EMAIL are required")
	}

	renderer := page.NewRenderer(assets.FS, page.Config{})
	cors := middlewares.CORS(middlewares.WithAllowOrigins(cfg.AllowedOrigins...))

	return web.New(
		web.WithCustomLogger(log),
		web.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(middlewares.WithSkipPaths("/health/live", "/health/ready")),
			middlewares.Recover(),
		),
		web.WithErrorHandler(handlers.ErrorHandler),
		web.WithNotFoundHandler(handlers.NotFound),
		web.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		web.WithStaticFiles("/static/", assets.FS, "static"),
		web.WithHealthChecks(web.WithReadinessCheck("mailer", svc.Healthcheck)),
		web.WithHandlers(
			handlers.NewPages(renderer, handlers.Site{
				ContactEmail:    cfg.ContactEmail,
				PlausibleDomain: cfg.PlausibleDomain,
			}),
			handlers.NewContact(svc, cors),
		),
	), nil
}
