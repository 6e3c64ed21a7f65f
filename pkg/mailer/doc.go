// Package mailer provides a provider-agnostic email sending interface.
//
// # Architecture
//
//   - Sender: Interface that email providers implement (see the resend subpackage)
//   - Mailer: Validates an Email, fills in the default sender and the plain
//     text alternative, then hands it to the Sender
//
// # Usage
//
//	sender, err := resend.New(resend.Config{APIKey: os.Getenv("RESEND_API_KEY")})
//	if err != nil {
//		return err
//	}
//
//	m := mailer.New(sender, mailer.Config{
//		DefaultFrom:  "Hudson Yards Studios <hello@hystudios.io>",
//		TextFromHTML: true,
//	})
//
//	receipt, err := m.SendRaw(ctx, &mailer.Email{
//		To:      []string{"team@hystudios.io"},
//		ReplyTo: "jane@example.com",
//		Subject: "[HYS] Deck request — Jane",
//		HTML:    body,
//		Tags:    mailer.Tags{"source": "contact_form"},
//	})
//
// # Error Handling
//
// Validation failures return ErrNoRecipient, ErrNoSender, ErrNoSubject or
// ErrNoContent without contacting the provider. Provider failures are joined
// with ErrSendFailed and one of:
//
//   - ErrTransport: the provider could not be reached or the context was cancelled
//   - ErrProviderRejected: the provider answered with an error
//
// Check them with errors.Is. A successful send returns a Receipt; an empty
// Receipt.ID means the provider did not identify the delivery.
package mailer
