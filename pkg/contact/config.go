package contact

// Config holds contact relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey       string `env:"RESEND_API_KEY"`
	To           string `env:"CONTACT_TO_EMAIL"`
	From         string `env:"CONTACT_FROM_EMAIL"`
	SubjectTag   string `env:"CONTACT_SUBJECT_TAG" envDefault:"[HYS]"`
	SiteName     string `env:"CONTACT_SITE_NAME" envDefault:"hystudios.io"`
	MaxBodyBytes int64  `env:"CONTACT_MAX_BODY_BYTES" envDefault:"65536"`
}

// Validate reports ErrNotConfigured when the provider key, the destination
// or the sender address is missing.
func (c Config) Validate() error {
	if c.APIKey == "" || c.To == "" || c.From == "" {
		return ErrNotConfigured
	}
	return nil
}
