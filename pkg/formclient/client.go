package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// Status is the submission state of a Client.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Messages shown when the server gives none.
const (
	MsgGeneric = "Something went wrong. Please try again."
	MsgNetwork = "Network error. Please try again."
)

var (
	ErrNotReady         = errors.New("formclient: form is not ready to submit")
	ErrAlreadySending   = errors.New("formclient: submission in progress")
	ErrAlreadySubmitted = errors.New("formclient: form already submitted")
)

// Client submits a Form to the contact endpoint and tracks the result.
//
// Transitions: idle -> sending -> success | error, error -> sending.
// success is terminal.
type Client struct {
	endpoint   string
	httpClient *http.Client

	mu     sync.Mutex
	status Status
	err    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for submissions.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// New creates a client posting to endpoint, e.g. "https://hystudios.io/api/contact".
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		status:     StatusIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Status returns the current status.
func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Err returns the message of the last failed submission, or "".
func (c *Client) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// CanSubmit reports whether f may be submitted now.
func (c *Client) CanSubmit(f Form) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return f.Ready() && c.status != StatusSending && c.status != StatusSuccess
}

type response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Submit posts f once and returns the resulting status.
//
// A refused submit (form not ready, already sending, already succeeded)
// returns an error and leaves the status untouched. Otherwise the outcome is
// recorded in Status and Err and the returned error is nil.
func (c *Client) Submit(ctx context.Context, f Form) (Status, error) {
	if !f.Ready() {
		return c.Status(), ErrNotReady
	}

	c.mu.Lock()
	switch c.status {
	case StatusSending:
		c.mu.Unlock()
		return StatusSending, ErrAlreadySending
	case StatusSuccess:
		c.mu.Unlock()
		return StatusSuccess, ErrAlreadySubmitted
	}
	c.status = StatusSending
	c.err = ""
	c.mu.Unlock()

	status, msg := c.post(ctx, f)

	c.mu.Lock()
	c.status = status
	c.err = msg
	c.mu.Unlock()

	return status, nil
}

func (c *Client) post(ctx context.Context, f Form) (Status, string) {
	body, err := json.Marshal(f)
	if err != nil {
		return StatusError, MsgGeneric
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return StatusError, MsgNetwork
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return StatusError, MsgNetwork
	}
	defer resp.Body.Close()

	// A body that is not JSON counts as no body.
	var data *response
	if raw, err := io.ReadAll(resp.Body); err == nil {
		if json.Unmarshal(raw, &data) != nil {
			data = nil
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || data == nil || !data.OK {
		if data != nil && data.Error != "" {
			return StatusError, data.Error
		}
		return StatusError, MsgGeneric
	}

	return StatusSuccess, ""
}

func (s Status) String() string {
	return string(s)
}

// Describe formats the status and any error message for display.
func (c *Client) Describe() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == StatusError && c.err != "" {
		return fmt.Sprintf("%s: %s", c.status, c.err)
	}
	return c.status.String()
}
