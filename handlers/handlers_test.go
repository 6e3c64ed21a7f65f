package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hystudios/web"
	"github.com/hystudios/web/assets"
	"github.com/hystudios/web/handlers"
	"github.com/hystudios/web/middlewares"
	"github.com/hystudios/web/pkg/contact"
	"github.com/hystudios/web/pkg/mailer"
	"github.com/hystudios/web/pkg/logger"
	"github.com/hystudios/web/pkg/page"
)

type senderFunc func(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error)

func (f senderFunc) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
	return f(ctx, email)
}

func okSender(sent *[]*mailer.Email) senderFunc {
	return func(_ context.Context, e *mailer.Email) (*mailer.Receipt, error) {
		*sent = append(*sent, e)
		return &mailer.Receipt{ID: "email_1"}, nil
	}
}

type panicRoute struct{}

func (panicRoute) Routes(r web.Router) {
	r.GET("/api/boom", func(web.Context) error { panic("boom") })
	r.GET("/boom", func(web.Context) error { panic("boom") })
}

func newApp(t *testing.T, cfg contact.Config, sender mailer.Sender) http.Handler {
	t.Helper()

	svc := contact.NewService(cfg, sender, nil)
	cors := middlewares.CORS(middlewares.WithAllowOrigins("https://hystudios.io"))

	app := web.New(
		web.WithCustomLogger(logger.NewNope()),
		web.WithMiddleware(middlewares.RequestID(), middlewares.Recover(middlewares.WithRecoverDisablePrintStack())),
		web.WithErrorHandler(handlers.ErrorHandler),
		web.WithNotFoundHandler(handlers.NotFound),
		web.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		web.WithStaticFiles("/static/", assets.FS, "static"),
		web.WithHandlers(
			handlers.NewPages(page.NewRenderer(assets.FS, page.Config{}), handlers.Site{
				ContactEmail:    "hello@hystudios.io",
				PlausibleDomain: "hystudios.io",
			}),
			handlers.NewContact(svc, cors),
			panicRoute{},
		),
	)
	return app.Router()
}

func configured() contact.Config {
	return contact.Config{
		APIKey:       "re_test",
		To:           "team@hystudios.io",
		From:         "hello@hystudios.io",
		SubjectTag:   "[HYS]",
		SiteName:     "hystudios.io",
		MaxBodyBytes: 64 << 10,
	}
}

func do(h http.Handler, method, target, body string, header ...string) *httptest.ResponseRecorder {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(header); i += 2 {
		r.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), w.Body.String())
	return got
}

func TestContact_Success(t *testing.T) {
	t.Parallel()

	var sent []*mailer.Email
	h := newApp(t, configured(), okSender(&sent))

	w := do(h, http.MethodPost, "/api/contact", `{"name":"Jane Doe","email":"jane@x.com","interest":"Request an intro call"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"ok": true}, decode(t, w))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	require.Len(t, sent, 1)
	assert.Equal(t, "[HYS] Intro call request — Jane Doe", sent[0].Subject)
}

func TestContact_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    contact.Config
		sender senderFunc
		body   string
		status int
		msg    string
	}{
		{
			name:   "not configured",
			cfg:    contact.Config{},
			body:   `{"name":"Jane Doe","email":"jane@x.com"}`,
			status: http.StatusInternalServerError,
			msg:    "Server is not configured.",
		},
		{
			name:   "invalid payload",
			cfg:    configured(),
			body:   `{oops`,
			status: http.StatusBadRequest,
			msg:    "Invalid payload.",
		},
		{
			name:   "bad email",
			cfg:    configured(),
			body:   `{"name":"Jane","email":"missing-tld@x"}`,
			status: http.StatusBadRequest,
			msg:    "Please enter a valid email.",
		},
		{
			name: "provider error",
			cfg:  configured(),
			sender: func(context.Context, *mailer.Email) (*mailer.Receipt, error) {
				return nil, mailer.ErrProviderRejected
			},
			body:   `{"name":"Jane","email":"jane@x.com"}`,
			status: http.StatusBadGateway,
			msg:    "Email failed to send.",
		},
		{
			name: "missing id",
			cfg:  configured(),
			sender: func(context.Context, *mailer.Email) (*mailer.Receipt, error) {
				return &mailer.Receipt{}, nil
			},
			body:   `{"name":"Jane","email":"jane@x.com"}`,
			status: http.StatusBadGateway,
			msg:    "Email service returned an unexpected response.",
		},
		{
			name: "sender panics",
			cfg:  configured(),
			sender: func(context.Context, *mailer.Email) (*mailer.Receipt, error) {
				panic("nil map")
			},
			body:   `{"name":"Jane","email":"jane@x.com"}`,
			status: http.StatusInternalServerError,
			msg:    "Failed to send.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := tt.sender
			if sender == nil {
				sender = func(context.Context, *mailer.Email) (*mailer.Receipt, error) {
					t.Fatal("sender must not be called")
					return nil, nil
				}
			}

			w := do(newApp(t, tt.cfg, sender), http.MethodPost, "/api/contact", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, map[string]any{"ok": false, "error": tt.msg}, decode(t, w))
		})
	}
}

func TestContact_Honeypot(t *testing.T) {
	t.Parallel()

	var sent []*mailer.Email
	w := do(newApp(t, configured(), okSender(&sent)), http.MethodPost, "/api/contact", `{"name":"x","website":"spam"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"ok": true}, decode(t, w))
	assert.Empty(t, sent)
}

func TestContact_CORS(t *testing.T) {
	t.Parallel()

	var sent []*mailer.Email
	h := newApp(t, configured(), okSender(&sent))

	w := do(h, http.MethodOptions, "/api/contact", "",
		"Origin", "https://hystudios.io",
		"Access-Control-Request-Method", "POST",
	)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://hystudios.io", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(h, http.MethodOptions, "/api/contact", "", "Origin", "https://evil.example")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = do(h, http.MethodPost, "/api/contact", `{"name":"Jane","email":"jane@x.com"}`, "Origin", "https://hystudios.io")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://hystudios.io", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	h := newApp(t, configured(), okSender(new([]*mailer.Email)))

	w := do(h, http.MethodGet, "/api/contact", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, map[string]any{"ok": false, "error": "Method not allowed."}, decode(t, w))

	w = do(h, http.MethodGet, "/api/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]any{"ok": false, "error": "Failed to send."}, decode(t, w))

	w = do(h, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", w.Body.String())

	w = do(h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found.", w.Body.String())
}

func TestPages_Landing(t *testing.T) {
	t.Parallel()

	h := newApp(t, configured(), okSender(new([]*mailer.Email)))

	w := do(h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "<title>Hudson Yards Studios — Coming Soon</title>")
	assert.Contains(t, body, `<meta name="robots" content="index, follow">`)
	assert.Contains(t, body, `property="og:site_name" content="Hudson Yards Studios"`)
	assert.Contains(t, body, "Film Financing (Yield Engine)")
	assert.Contains(t, body, "<h1>Hudson Yards Studios</h1>")
	assert.Contains(t, body, `action="/api/contact"`)
	assert.Contains(t, body, `<option selected>Request the deck</option>`)
	assert.Contains(t, body, "Request an intro call")
	assert.Contains(t, body, `data-domain="hystudios.io"`)
	assert.Contains(t, body, "mailto:hello@hystudios.io")
	assert.Contains(t, body, "© "+time.Now().Format("2006")+" Hudson Yards Studios")
	assert.Contains(t, body, `name="website"`)
}

func TestStaticScript(t *testing.T) {
	t.Parallel()

	h := newApp(t, configured(), okSender(new([]*mailer.Email)))

	w := do(h, http.MethodGet, "/static/contact.js", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Network error. Please try again.")
	assert.Contains(t, w.Body.String(), "Something went wrong. Please try again.")
}
