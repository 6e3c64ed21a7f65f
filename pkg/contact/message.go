package contact

import (
	"strings"
	"text/template"

	"github.com/hystudios/web/pkg/mailer"
	"github.com/hystudios/web/pkg/sanitizer"
)

const (
	orgPlaceholder     = "(not provided)"
	messagePlaceholder = "(none)"
)

const defaultSubjectTag = "[HYS]"

// Provider tags attached to every relayed email: source and kind.
const (
	TagSource   = "contact_form"
	TagKindCall = "intro_call"
	TagKindDeck = "deck_request"
)

// escaped holds submission values after HTML escaping.
type escaped struct {
	Site     string
	Name     string
	Email    string
	Org      string
	Interest string
	Message  string
}

func escape(s *Submission, site string) escaped {
	return escaped{
		Site:     sanitizer.EscapeHTML(site),
		Name:     sanitizer.EscapeHTML(s.Name),
		Email:    sanitizer.EscapeHTML(s.Email),
		Org:      sanitizer.EscapeHTML(s.Org),
		Interest: sanitizer.EscapeHTML(s.Interest),
		Message:  sanitizer.EscapeHTML(s.Message),
	}
}

// Values are escaped before execution; text/template keeps them as they are.
var bodyTemplate = template.Must(template.New("contact").Parse(`
<div style="font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial; line-height: 1.5;">
  <h2 style="margin: 0 0 12px;">New inbound from {{.Site}}</h2>
  <p style="margin: 0 0 10px;"><b>Interest:</b> {{.Interest}}</p>
  <p style="margin: 0 0 10px;">
    <b>Name:</b> {{.Name}}<br/>
    <b>Email:</b> {{.Email}}<br/>
    <b>Org:</b> {{if .Org}}{{.Org}}{{else}}` + orgPlaceholder + `{{end}}
  </p>
  <p style="margin: 0 0 6px;"><b>Message:</b></p>
  <div style="white-space: pre-wrap; border: 1px solid #e5e7eb; border-radius: 10px; padding: 12px; background: #fafafa;">{{if .Message}}{{.Message}}{{else}}` + messagePlaceholder + `{{end}}</div>
  <p style="margin: 14px 0 0; color: #6b7280; font-size: 12px;">Sent from the {{.Site}} contact form.</p>
</div>
`))

// Subject builds the notification subject:
// "<tag> Intro call request — Name (Org)" or "<tag> Deck request — Name (Org)".
func Subject(s *Submission, tag string) string {
	if tag == "" {
		tag = defaultSubjectTag
	}
	e := escape(s, "")

	var b strings.Builder
	b.WriteString(tag)
	if s.IsCallRequest() {
		b.WriteString(" Intro call request — ")
	} else {
		b.WriteString(" Deck request — ")
	}
	b.WriteString(e.Name)
	if e.Org != "" {
		b.WriteString(" (")
		b.WriteString(e.Org)
		b.WriteString(")")
	}
	return b.String()
}

// Body builds the HTML notification body. Every submitted value is escaped exactly once.
func Body(s *Submission, site string) (string, error) {
	var b strings.Builder
	if err := bodyTemplate.Execute(&b, escape(s, site)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Compose builds the email relayed for s. Reply-To is the submitter's raw
// trimmed address so a reply reaches them.
func Compose(s *Submission, cfg Config) (*mailer.Email, error) {
	html, err := Body(s, cfg.SiteName)
	if err != nil {
		return nil, err
	}

	kind := TagKindDeck
	if s.IsCallRequest() {
		kind = TagKindCall
	}

	return &mailer.Email{
		From:    cfg.From,
		To:      []string{cfg.To},
		ReplyTo: s.Email,
		Subject: Subject(s, cfg.SubjectTag),
		HTML:    html,
		Tags: mailer.Tags{
			"source": TagSource,
			"kind":   kind,
		},
	}, nil
}
