package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultInterest applies when the payload has no interest.
const DefaultInterest = "Request the deck"

// Field ceilings, in runes of the trimmed value. An astral character such as
// an emoji counts once here, where a UTF-16 length would count it twice.
const (
	MinNameLen     = 2
	MaxNameLen     = 120
	MaxEmailLen    = 160
	MaxOrgLen      = 160
	MaxInterestLen = 80
	MaxMessageLen  = 2000
)

// emailPattern is deliberately loose: one @, no whitespace, a dot after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is a decoded contact form. Fields hold trimmed values.
type Submission struct {
	Name     string
	Email    string
	Org      string
	Interest string
	Message  string
	Honeypot string
}

// Payload keys. Matching is exact: "Website" or "NAME" are unknown keys.
const (
	keyName     = "name"
	keyEmail    = "email"
	keyOrg      = "org"
	keyInterest = "interest"
	keyMessage  = "message"
	keyHoneypot = "website"
)

// Decode reads one JSON object of at most limit bytes from r.
// Unknown keys are ignored. A filled honeypot short-circuits decoding, so
// bot traffic is never rejected for the shape of the visible fields.
// Otherwise anything that is not an object of optional string fields is
// ErrInvalidPayload.
func Decode(r io.Reader, limit int64) (*Submission, error) {
	if limit <= 0 {
		limit = 64 << 10
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrInvalidPayload, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidPayload, limit)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: null body", ErrInvalidPayload)
	}

	if hp := honeypot(fields[keyHoneypot]); hp != "" {
		return &Submission{Honeypot: hp}, nil
	}

	var p struct{ name, email, org, interest, message *string }
	for key, dst := range map[string]**string{
		keyName:     &p.name,
		keyEmail:    &p.email,
		keyOrg:      &p.org,
		keyInterest: &p.interest,
		keyMessage:  &p.message,
	} {
		v, err := stringField(fields[key])
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidPayload, key, err)
		}
		*dst = v
	}

	interest := DefaultInterest
	if p.interest != nil {
		interest = *p.interest
	}

	return &Submission{
		Name:     trimmed(p.name),
		Email:    trimmed(p.email),
		Org:      trimmed(p.org),
		Interest: strings.TrimSpace(interest),
		Message:  trimmed(p.message),
	}, nil
}

// stringField decodes an optional string. Absent and null are both nil.
func stringField(raw json.RawMessage) (*string, error) {
	if raw == nil || string(raw) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// honeypot returns the trimmed honeypot value. A value that is not a string,
// such as a number or an array, counts as filled and comes back as its JSON
// text.
func honeypot(raw json.RawMessage) string {
	v, err := stringField(raw)
	if err != nil {
		return strings.TrimSpace(string(raw))
	}
	return trimmed(v)
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// IsBot reports whether the hidden honeypot field was filled.
func (s *Submission) IsBot() bool {
	return s.Honeypot != ""
}

// Validate checks the visible fields in order: name, email, then the
// length ceilings. The first failure is returned.
func (s *Submission) Validate() error {
	if utf8.RuneCountInString(s.Name) < MinNameLen {
		return ErrNameRequired
	}
	if s.Email == "" || !emailPattern.MatchString(s.Email) {
		return ErrEmailInvalid
	}

	switch {
	case utf8.RuneCountInString(s.Name) > MaxNameLen,
		utf8.RuneCountInString(s.Email) > MaxEmailLen,
		utf8.RuneCountInString(s.Org) > MaxOrgLen,
		utf8.RuneCountInString(s.Interest) > MaxInterestLen,
		utf8.RuneCountInString(s.Message) > MaxMessageLen:
		return ErrInputTooLong
	}

	return nil
}

// IsCallRequest reports whether the submitter asked for an intro call.
func (s *Submission) IsCallRequest() bool {
	return strings.Contains(strings.ToLower(s.Interest), "call")
}
