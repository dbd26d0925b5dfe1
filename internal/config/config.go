package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

// Config carries all runtime settings, parsed from the environment.
type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	GinMode       string        `env:"GIN_MODE" envDefault:"debug"`
	DatabaseURL   string        `env:"POSTGRES_URL"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SetupSecret   string        `env:"SETUP_SECRET"`
	CORSOrigins   []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`

	Blob BlobConfig
}

// BlobConfig configures the object store backing file uploads.
type BlobConfig struct {
	Endpoint      string `env:"BLOB_ENDPOINT"`
	AccessKey     string `env:"BLOB_ACCESS_KEY"`
	SecretKey     string `env:"BLOB_SECRET_KEY"`
	Bucket        string `env:"BLOB_BUCKET" envDefault:"backoffice-files"`
	UseSSL        bool   `env:"BLOB_USE_SSL" envDefault:"true"`
	PublicBaseURL string `env:"BLOB_PUBLIC_URL"`
}

// New loads the optional .env file at envPath and parses the environment.
func New(envPath string) (Config, error) {
	var c Config

	if envPath != "" {
		err := godotenv.Load(envPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// MissingRequired lists required settings that are absent. Requests cannot be
// served without them; handlers turn a non-empty result into a 503.
func (c Config) MissingRequired() []string {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "POSTGRES_URL")
	}
	if c.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	return missing
}

// Validate reports configuration that is present but unusable.
func (c Config) Validate() error {
	if c.SessionSecret != "" && len(c.SessionSecret) < 64 {
		return fmt.Errorf("SESSION_SECRET must be at least 64 hexadecimal characters")
	}
	return nil
}
