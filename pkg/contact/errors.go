package contact

import (
	"errors"
	"net/http"
)

var (
	ErrNotConfigured      = errors.New("contact: not configured")
	ErrInvalidPayload     = errors.New("contact: invalid payload")
	ErrNameRequired       = errors.New("contact: name required")
	ErrEmailInvalid       = errors.New("contact: invalid email")
	ErrInputTooLong       = errors.New("contact: input too long")
	ErrProviderRejected   = errors.New("contact: provider rejected email")
	ErrUnexpectedResponse = errors.New("contact: provider response without id")
	ErrSendFailed         = errors.New("contact: send failed")
)

// Outcome is the JSON answer of the contact endpoint.
type Outcome struct {
	Status int    `json:"-"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// Public messages shown to the submitter.
const (
	MsgNotConfigured      = "Server is not configured."
	MsgInvalidPayload     = "Invalid payload."
	MsgNameRequired       = "Please enter your name."
	MsgEmailInvalid       = "Please enter a valid email."
	MsgInputTooLong       = "Input too long."
	MsgProviderRejected   = "Email failed to send."
	MsgUnexpectedResponse = "Email service returned an unexpected response."
	MsgSendFailed         = "Failed to send."
)

var outcomes = []struct {
	err     error
	status  int
	message string
}{
	{ErrNotConfigured, http.StatusInternalServerError, MsgNotConfigured},
	{ErrInvalidPayload, http.StatusBadRequest, MsgInvalidPayload},
	{ErrNameRequired, http.StatusBadRequest, MsgNameRequired},
	{ErrEmailInvalid, http.StatusBadRequest, MsgEmailInvalid},
	{ErrInputTooLong, http.StatusBadRequest, MsgInputTooLong},
	{ErrProviderRejected, http.StatusBadGateway, MsgProviderRejected},
	{ErrUnexpectedResponse, http.StatusBadGateway, MsgUnexpectedResponse},
}

// OutcomeOf maps a Submit error to its response.
// nil is success; unknown errors collapse to 500 "Failed to send.".
func OutcomeOf(err error) Outcome {
	if err == nil {
		return Outcome{Status: http.StatusOK, OK: true}
	}
	for _, o := range outcomes {
		if errors.Is(err, o.err) {
			return Outcome{Status: o.status, Error: o.message}
		}
	}
	return Outcome{Status: http.StatusInternalServerError, Error: MsgSendFailed}
}
