package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/hystudios/web"
	"github.com/hystudios/web/pkg/contact"
)

// ErrorHandler renders errors as {"ok":false,"error":"..."} under /api/ and
// as plain text elsewhere. Errors that are not HTTPErrors (panics included)
// become 500 with a generic message; their details are only logged.
func ErrorHandler(c web.Context, err error) error {
	status := http.StatusInternalServerError
	message := http.StatusText(status)
	httpErr := web.AsHTTPError(err)
	if httpErr != nil {
		status, message = httpErr.Code, httpErr.Message
	}

	if status >= http.StatusInternalServerError {
		c.LogError("request failed", slog.Int("status", status), slog.Any("error", err))
	}

	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		if httpErr == nil {
			message = contact.MsgSendFailed
		}
		c.SetHeader("Cache-Control", "no-store")
		return c.JSON(status, contact.Outcome{Error: message})
	}

	return c.String(status, message)
}

// NotFound answers unknown routes.
func NotFound(c web.Context) error {
	return web.ErrNotFound("Not found.")
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(c web.Context) error {
	return web.ErrMethodNotAllowed("Method not allowed.")
}
