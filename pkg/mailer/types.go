package mailer

// Tags are name-value labels attached to a sent email. Providers use them
// for filtering and webhooks; Resend restricts both to ASCII letters,
// digits, underscores and dashes.
type Tags map[string]string

// Email is a message ready to hand to a Sender.
type Email struct {
	Tags    Tags
	Subject string
	HTML    string
	Text    string // plain text alternative; see Config.TextFromHTML
	From    string // falls back to Config.DefaultFrom
	ReplyTo string
	To      []string
}

// Receipt is the provider's acknowledgement of an accepted email.
// An empty ID means the provider answered without identifying the delivery.
type Receipt struct {
	ID string
}
