package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hystudios/web/pkg/mailer"
)

// Service validates contact submissions and relays them through a mailer.Sender.
// It keeps no state between submissions.
type Service struct {
	cfg    Config
	mailer *mailer.Mailer
	logger *slog.Logger
}

// NewService creates a contact service. A nil logger discards output.
func NewService(cfg Config, sender mailer.Sender, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		cfg: cfg,
		mailer: mailer.New(sender, mailer.Config{
			DefaultFrom:  cfg.From,
			TextFromHTML: true,
		}),
		logger: logger.With(slog.String("component", "contact")),
	}
}

// Submit handles one raw request body and returns the response to send back.
// It never panics; every failure becomes an Outcome.
func (s *Service) Submit(ctx context.Context, body io.Reader) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "contact submission panicked", slog.Any("panic", r))
			out = OutcomeOf(fmt.Errorf("%w: panic: %v", ErrSendFailed, r))
		}
	}()

	return OutcomeOf(s.submit(ctx, body))
}

func (s *Service) submit(ctx context.Context, body io.Reader) error {
	// Checked before the body is read so a misconfigured server never calls out.
	if err := s.cfg.Validate(); err != nil {
		s.logger.ErrorContext(ctx, "contact relay is not configured")
		return err
	}

	sub, err := Decode(body, s.cfg.MaxBodyBytes)
	if err != nil {
		s.logger.DebugContext(ctx, "invalid contact payload", slog.Any("error", err))
		return err
	}

	if sub.IsBot() {
		s.logger.InfoContext(ctx, "contact honeypot triggered, dropping submission")
		return nil
	}

	if err := sub.Validate(); err != nil {
		return err
	}

	email, err := Compose(sub, s.cfg)
	if err != nil {
		return fmt.Errorf("%w: compose: %w", ErrSendFailed, err)
	}

	receipt, err := s.mailer.SendRaw(ctx, email)
	switch {
	case errors.Is(err, mailer.ErrProviderRejected):
		s.logger.ErrorContext(ctx, "email provider rejected contact email", slog.Any("error", err))
		return errors.Join(ErrProviderRejected, err)
	case err != nil:
		s.logger.ErrorContext(ctx, "contact email send failed", slog.Any("error", err))
		return errors.Join(ErrSendFailed, err)
	case receipt.ID == "":
		s.logger.ErrorContext(ctx, "email provider returned no id")
		return ErrUnexpectedResponse
	}

	s.logger.InfoContext(ctx, "contact email sent",
		slog.String("email_id", receipt.ID),
		slog.Bool("intro_call", sub.IsCallRequest()),
	)
	return nil
}

// Healthcheck reports whether the relay can send. It matches health.CheckFunc.
func (s *Service) Healthcheck(context.Context) error {
	return s.cfg.Validate()
}
