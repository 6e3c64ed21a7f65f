package middlewares_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hystudios/web/internal"
	"github.com/hystudios/web/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers from panic and returns PanicError", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/contact", nil))

		handler := middlewares.Recover()(func(c internal.Context) error {
			panic("nil map write")
		})

		err := handler(ctx)
		require.Error(t, err)
		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "nil map write", pe.Value)
		require.NotEmpty(t, pe.Stack)

		entries := ctx.entries()
		require.Len(t, entries, 1)
		require.Equal(t, "panic recovered", entries[0]["msg"])
		require.Contains(t, entries[0], "stack")
		require.Equal(t, "/api/contact", entries[0]["path"])
		require.Equal(t, http.MethodPost, entries[0]["method"])
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		want := errors.New("handler error")

		err := middlewares.Recover()(func(c internal.Context) error { return want })(ctx)
		require.ErrorIs(t, err, want)
		_, ok := middlewares.AsPanicError(err)
		require.False(t, ok)
		require.Empty(t, ctx.entries())
	})

	t.Run("disable print stack", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(c internal.Context) error {
			panic("boom")
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Nil(t, pe.Stack)
		require.NotContains(t, ctx.entries()[0], "stack")
	})

	t.Run("stack size limit", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover(middlewares.WithRecoverStackSize(64))(func(c internal.Context) error {
			panic("boom")
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})

	t.Run("error panic value is unwrapped", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("provider client is nil")
		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover()(func(c internal.Context) error {
			panic(cause)
		})(ctx)

		require.ErrorIs(t, err, cause)
		require.Equal(t, fmt.Sprintf("panic: %v", cause), err.Error())
	})

	t.Run("abort handler is re-panicked", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover()(func(c internal.Context) error {
			panic(http.ErrAbortHandler)
		})

		require.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = handler(ctx) })
	})
}

func TestPanicErrorHelpers(t *testing.T) {
	t.Parallel()

	_, ok := middlewares.AsPanicError(http.ErrNoCookie)
	require.False(t, ok)

	wrapped := fmt.Errorf("request: %w", &middlewares.PanicError{Value: "x"})
	pe, ok := middlewares.AsPanicError(wrapped)
	require.True(t, ok)
	require.Equal(t, "x", pe.Value)
}
