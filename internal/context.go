package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Component is anything that renders itself to a writer. templ.Component
// satisfies it.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context is the per-request value handlers receive. It is also the
// request's context.Context, so it can be handed to anything that blocks.
type Context interface {
	context.Context

	Request() *http.Request
	Response() http.ResponseWriter
	ResponseWriter() *ResponseWriter

	// Param returns the chi URL parameter, or "".
	Param(name string) string
	// Query returns the first value of the query parameter, or "".
	Query(name string) string
	Header(name string) string
	SetHeader(name, value string)

	JSON(code int, v any) error
	String(code int, s string) error
	NoContent(code int) error
	// Render writes component as text/html.
	Render(code int, component Component) error
	// Written reports whether the status line has gone out.
	Written() bool

	// The Log helpers log with the request context, so context extractors
	// such as the request ID apply.
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value on the request context; Get reads it back.
	Set(key, value any)
	Get(key any) any
}

type requestContext struct {
	request *http.Request
	rw      *ResponseWriter
	logger  *slog.Logger
}

// newContext reuses w when it already is a *ResponseWriter, so every
// middleware layer sees the same status.
func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w)
	}
	return &requestContext{request: r, rw: rw, logger: app.logger}
}

func (c *requestContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *requestContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *requestContext) Err() error                  { return c.request.Context().Err() }
func (c *requestContext) Value(key any) any           { return c.request.Context().Value(key) }

func (c *requestContext) Request() *http.Request           { return c.request }
func (c *requestContext) Response() http.ResponseWriter    { return c.rw }
func (c *requestContext) ResponseWriter() *ResponseWriter  { return c.rw }
func (c *requestContext) Param(name string) string         { return chi.URLParam(c.request, name) }
func (c *requestContext) Query(name string) string         { return c.request.URL.Query().Get(name) }
func (c *requestContext) Header(name string) string        { return c.request.Header.Get(name) }
func (c *requestContext) SetHeader(name, value string)     { c.rw.Header().Set(name, value) }
func (c *requestContext) Written() bool                    { return c.rw.Written() }
func (c *requestContext) LogInfo(msg string, attrs ...any) { c.log(slog.LevelInfo, msg, attrs) }
func (c *requestContext) LogWarn(msg string, attrs ...any) { c.log(slog.LevelWarn, msg, attrs) }

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.log(slog.LevelError, msg, attrs)
}

func (c *requestContext) log(level slog.Level, msg string, attrs []any) {
	c.logger.Log(c.request.Context(), level, msg, attrs...)
}

func (c *requestContext) JSON(code int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.rw.WriteHeader(code)
	_, err = c.rw.Write(append(body, '\n'))
	return err
}

func (c *requestContext) String(code int, s string) error {
	c.rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.rw.WriteHeader(code)
	_, err := io.WriteString(c.rw, s)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *requestContext) Render(code int, component Component) error {
	c.rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.rw.WriteHeader(code)
	return component.Render(c.request.Context(), c.rw)
}

// Set replaces the request with one carrying the value, so later
// middleware and handlers in this chain can see it.
func (c *requestContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

// ContextValue returns the value stored under key with Set, or the zero
// value when the key is missing or holds another type.
func ContextValue[T any](c Context, key any) T {
	v, _ := c.Get(key).(T)
	return v
}
