package mailer

import (
	"context"
	"errors"

	"github.com/hystudios/web/pkg/sanitizer"
)

// Config holds mailer configuration.
type Config struct {
	// DefaultFrom is used when an email has no From address.
	DefaultFrom string
	// TextFromHTML derives the plain text alternative from the HTML body
	// when an email has no Text.
	TextFromHTML bool
}

// Mailer validates and completes emails before handing them to a Sender.
type Mailer struct {
	sender Sender
	config Config
}

// New creates a new Mailer with the given sender.
func New(sender Sender, cfg Config) *Mailer {
	return &Mailer{
		sender: sender,
		config: cfg,
	}
}

// SendRaw sends a pre-built email and returns the provider receipt.
// The email is validated first; nothing is sent when validation fails.
// Provider failures are joined with ErrSendFailed and keep their
// ErrTransport / ErrProviderRejected classification.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) (*Receipt, error) {
	if len(email.To) == 0 {
		return nil, ErrNoRecipient
	}
	if email.From == "" {
		if m.config.DefaultFrom == "" {
			return nil, ErrNoSender
		}
		email.From = m.config.DefaultFrom
	}
	if email.Subject == "" {
		return nil, ErrNoSubject
	}
	if email.HTML == "" {
		return nil, ErrNoContent
	}
	if email.Text == "" && m.config.TextFromHTML {
		email.Text = sanitizer.PlainText(email.HTML)
	}

	receipt, err := m.sender.Send(ctx, email)
	if err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}
	if receipt == nil {
		receipt = &Receipt{}
	}

	return receipt, nil
}
