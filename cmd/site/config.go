package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/hystudios/web/pkg/contact"
	"github.com/hystudios/web/pkg/logger"
	"github.com/hystudios/web/pkg/mailer/resend"
)

// Config is the site configuration, read from the environment.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"https://hystudios.io,https://www.hystudios.io" envSeparator:","`
	ContactEmail    string        `env:"SITE_CONTACT_EMAIL" envDefault:"hello@hystudios.io"`
	PlausibleDomain string        `env:"PLAUSIBLE_DOMAIN" envDefault:"hystudios.io"`

	Log     logger.Config
	Contact contact.Config
	Resend  resend.Config
}

// loadConfig reads the given dotenv files when they exist, then parses the
// environment. Variables already set win over the files.
func loadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
