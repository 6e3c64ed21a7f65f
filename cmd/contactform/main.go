// Command contactform is a terminal front-end for the contact endpoint.
//
//	CONTACT_ENDPOINT=http://localhost:8080/api/contact go run ./cmd/contactform
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/hystudios/web/pkg/formclient"
)

type config struct {
	Endpoint string `env:"CONTACT_ENDPOINT" envDefault:"http://localhost:8080/api/contact"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "contactform: load .env: %v\n", err)
		os.Exit(1)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "contactform: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(formclient.New(cfg.Endpoint)))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "contactform: %v\n", err)
		os.Exit(1)
	}
}
