package formclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hystudios/web/pkg/formclient"
)

func readyForm() formclient.Form {
	f := formclient.NewForm()
	f.Name = "Jane Doe"
	f.Email = "jane@x.com"
	return f
}

func TestForm_Ready(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		form  formclient.Form
		ready bool
	}{
		{"complete", formclient.Form{Name: "Jo", Email: "a@b.c"}, true},
		{"short name", formclient.Form{Name: " J ", Email: "a@b.co"}, false},
		{"short email", formclient.Form{Name: "Jane", Email: " a@b "}, false},
		{"multibyte name", formclient.Form{Name: "Zoë", Email: "zoe@x.io"}, true},
		{"empty", formclient.NewForm(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.ready, tt.form.Ready())
		})
	}

	assert.Equal(t, formclient.DefaultInterest, formclient.NewForm().Interest)
}

func TestClient_SubmitSuccess(t *testing.T) {
	t.Parallel()

	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := formclient.New(srv.URL)
	require.Equal(t, formclient.StatusIdle, c.Status())

	f := readyForm()
	f.Website = "bot"
	status, err := c.Submit(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, formclient.StatusSuccess, status)
	assert.Empty(t, c.Err())

	assert.Equal(t, map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@x.com",
		"org":      "",
		"interest": "Request the deck",
		"message":  "",
		"website":  "bot",
	}, got)

	// success is terminal
	assert.False(t, c.CanSubmit(readyForm()))
	_, err = c.Submit(context.Background(), readyForm())
	require.ErrorIs(t, err, formclient.ErrAlreadySubmitted)
}

func TestClient_SubmitErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"server message", http.StatusBadRequest, `{"ok":false,"error":"Please enter a valid email."}`, "Please enter a valid email."},
		{"ok false on 200", http.StatusOK, `{"ok":false}`, formclient.MsgGeneric},
		{"ok true on 500", http.StatusInternalServerError, `{"ok":true}`, formclient.MsgGeneric},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, formclient.MsgGeneric},
		{"empty body", http.StatusOK, ``, formclient.MsgGeneric},
		{"null body", http.StatusOK, `null`, formclient.MsgGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := formclient.New(srv.URL)
			status, err := c.Submit(context.Background(), readyForm())
			require.NoError(t, err)
			assert.Equal(t, formclient.StatusError, status)
			assert.Equal(t, tt.want, c.Err())
			assert.Equal(t, "error: "+tt.want, c.Describe())
			assert.True(t, c.CanSubmit(readyForm()))
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := formclient.New(url)
	status, err := c.Submit(context.Background(), readyForm())
	require.NoError(t, err)
	assert.Equal(t, formclient.StatusError, status)
	assert.Equal(t, formclient.MsgNetwork, c.Err())
}

func TestClient_RetryAfterError(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		calls int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"ok":false,"error":"Email failed to send."}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := formclient.New(srv.URL, formclient.WithHTTPClient(srv.Client()))

	status, err := c.Submit(context.Background(), readyForm())
	require.NoError(t, err)
	require.Equal(t, formclient.StatusError, status)

	status, err = c.Submit(context.Background(), readyForm())
	require.NoError(t, err)
	assert.Equal(t, formclient.StatusSuccess, status)
	assert.Empty(t, c.Err())
}

func TestClient_RefusesWhileSending(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := formclient.New(srv.URL)

	done := make(chan formclient.Status)
	go func() {
		status, _ := c.Submit(context.Background(), readyForm())
		done <- status
	}()

	<-entered
	assert.Equal(t, formclient.StatusSending, c.Status())
	assert.False(t, c.CanSubmit(readyForm()))

	_, err := c.Submit(context.Background(), readyForm())
	require.ErrorIs(t, err, formclient.ErrAlreadySending)

	close(release)
	assert.Equal(t, formclient.StatusSuccess, <-done)
}

func TestClient_RefusesUnreadyForm(t *testing.T) {
	t.Parallel()

	c := formclient.New("http://127.0.0.1:0")
	status, err := c.Submit(context.Background(), formclient.NewForm())
	require.ErrorIs(t, err, formclient.ErrNotReady)
	assert.Equal(t, formclient.StatusIdle, status)
	assert.Equal(t, "idle", c.Describe())
}
