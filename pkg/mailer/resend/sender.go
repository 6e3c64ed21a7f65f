package resend

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/hystudios/web/pkg/mailer"
)

// Sender delivers email through the Resend API.
type Sender struct {
	client *resend.Client
}

// New creates a sender on http.DefaultClient. It applies no timeout of its
// own: a send ends when the API answers or ctx is cancelled.
func New(cfg Config) (*Sender, error) {
	return NewWithClient(cfg, http.DefaultClient)
}

// NewWithClient creates a sender on httpClient. A non-empty cfg.BaseURL
// replaces the API endpoint, which tests point at an httptest server.
func NewWithClient(cfg Config, httpClient *http.Client) (*Sender, error) {
	client := resend.NewCustomClient(httpClient, cfg.APIKey)

	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("resend: invalid base url %q: %w", cfg.BaseURL, err)
		}
		client.BaseURL = u
	}

	return &Sender{client: client}, nil
}

// Send posts the email to /emails and returns the Resend email ID.
// Errors are joined with mailer.ErrTransport or mailer.ErrProviderRejected.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}
	for name, value := range email.Tags {
		req.Tags = append(req.Tags, resend.Tag{Name: name, Value: value})
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("resend: send email: %w", classify(ctx, err))
	}
	if resp == nil {
		return &mailer.Receipt{}, nil
	}

	return &mailer.Receipt{ID: resp.Id}, nil
}

// classify tags err as a transport failure (no response from the API) or a
// provider rejection (the API answered with an error).
func classify(ctx context.Context, err error) error {
	var (
		urlErr *url.Error
		netErr net.Error
	)
	switch {
	case ctx.Err() != nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &urlErr),
		errors.As(err, &netErr):
		return errors.Join(mailer.ErrTransport, err)
	default:
		return errors.Join(mailer.ErrProviderRejected, err)
	}
}
