package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSender indicates neither the email nor the mailer defines a sender.
	ErrNoSender = errors.New("email must have a sender")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no HTML content was provided.
	ErrNoContent = errors.New("email must have HTML content")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrTransport indicates the provider could not be reached or the request
	// was cancelled before a response arrived.
	ErrTransport = errors.New("email provider unreachable")

	// ErrProviderRejected indicates the provider answered with an error.
	ErrProviderRejected = errors.New("email provider rejected the request")
)
