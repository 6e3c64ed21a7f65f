package handlers

import (
	"net/http"

	"github.com/hystudios/web"
	"github.com/hystudios/web/pkg/contact"
)

// ContactPath is the contact endpoint.
const ContactPath = "/api/contact"

// ContactHandler relays contact form submissions.
// Implements web.Handler interface.
type ContactHandler struct {
	service *contact.Service
	mw      []web.Middleware
}

// NewContact creates a contact handler. Middleware (typically CORS) is
// applied to both the POST route and its preflight.
func NewContact(service *contact.Service, mw ...web.Middleware) *ContactHandler {
	return &ContactHandler{service: service, mw: mw}
}

// Routes declares the contact routes.
func (h *ContactHandler) Routes(r web.Router) {
	r.POST(ContactPath, h.submit, h.mw...)
	r.OPTIONS(ContactPath, h.preflight, h.mw...)
}

func (h *ContactHandler) submit(c web.Context) error {
	out := h.service.Submit(c, c.Request().Body)
	c.SetHeader("Cache-Control", "no-store")
	return c.JSON(out.Status, out)
}

// preflight answers OPTIONS when no CORS middleware short-circuited it.
func (h *ContactHandler) preflight(c web.Context) error {
	return c.NoContent(http.StatusNoContent)
}
