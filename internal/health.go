package internal

import "github.com/hystudios/web/pkg/health"

const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

type healthConfig struct {
	checks        health.Checks
	livenessPath  string
	readinessPath string
}

// HealthOption configures the health probe endpoints.
type HealthOption func(*healthConfig)

// WithHealthChecks mounts the liveness and readiness probes, by default at
// /health/live and /health/ready. Probes pass through global middleware but
// answer on their own and never reach the error handler.
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			checks:        health.Checks{},
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithReadinessCheck adds a named readiness check. Checks run in parallel
// on every probe.
//
//	web.WithReadinessCheck("mailer", svc.Healthcheck)
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) {
		c.checks[name] = fn
	}
}

func (a *App) mountHealth() {
	if a.healthConfig == nil {
		return
	}
	a.router.Get(a.healthConfig.livenessPath, health.LivenessHandler())
	a.router.Get(a.healthConfig.readinessPath, health.ReadinessHandler(
		a.healthConfig.checks,
		health.WithLogger(a.logger),
	))
}
