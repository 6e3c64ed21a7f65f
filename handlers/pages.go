package handlers

import (
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/hystudios/web"
	"github.com/hystudios/web/pkg/formclient"
	"github.com/hystudios/web/pkg/page"
)

// Site holds the values the landing page needs besides its content file.
type Site struct {
	ContactEmail    string
	PlausibleDomain string
}

// LandingData is passed to the landing content and layout templates.
type LandingData struct {
	Site
	Year            int
	Endpoint        string
	Interests       []string
	DefaultInterest string
}

// PagesHandler serves the marketing pages.
// Implements web.Handler interface.
type PagesHandler struct {
	renderer *page.Renderer
	site     Site
	now      func() time.Time
}

// NewPages creates a pages handler rendering through renderer.
func NewPages(renderer *page.Renderer, site Site) *PagesHandler {
	return &PagesHandler{renderer: renderer, site: site, now: time.Now}
}

// Routes declares the page routes.
func (h *PagesHandler) Routes(r web.Router) {
	r.GET("/", h.landing)
	r.HEAD("/", h.landing)
}

func (h *PagesHandler) landing(c web.Context) error {
	data := LandingData{
		Site:            h.site,
		Year:            h.now().Year(),
		Endpoint:        ContactPath,
		Interests:       formclient.Interests,
		DefaultInterest: formclient.DefaultInterest,
	}

	// Rendered up front so a template failure can still produce an error page.
	p, err := h.renderer.Render("landing.html", "landing.md", data)
	if err != nil {
		return web.ErrInternal("Page unavailable.", web.WithError(err))
	}

	c.SetHeader("Cache-Control", "public, max-age=300")
	return c.Render(http.StatusOK, templ.Raw(p.HTML))
}
