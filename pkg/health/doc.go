// Package health serves the liveness and readiness probes.
//
// [LivenessHandler] always answers 200. [ReadinessHandler] runs a set of
// named [Checks] in parallel under one timeout (5s unless [WithTimeout] says
// otherwise) and answers 503 when any check fails:
//
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "mailer": svc.Healthcheck,
//	}, health.WithLogger(log)))
//
// Probes get "OK" or "Service Unavailable" as plain text. Ask for JSON with
// ?format=json or an Accept: application/json header:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "mailer": {"status": "unhealthy", "error": "contact: server is not configured"}
//	  }
//	}
//
// A check still running when the timeout expires is reported with
// [ErrCheckTimeout] joined to its own error.
package health
