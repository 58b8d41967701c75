package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, loaded from SMARTEVENTS_* env vars.
type Config struct {
	Env        string `env:"SMARTEVENTS_ENV" envDefault:"development"`
	Addr       string `env:"SMARTEVENTS_ADDR" envDefault:":8080"`
	APIBaseURL string `env:"SMARTEVENTS_API_URL" envDefault:"http://localhost:5000/api/v1"`

	// SessionDBPath is the SQLite file holding persisted sessions.
	SessionDBPath string `env:"SMARTEVENTS_SESSION_DB" envDefault:"smartevents.db"`

	// SessionSealKey seals bearer tokens at rest (64 hex chars, 32 bytes).
	// Empty in development means a random per-process key: sessions then do
	// not survive a restart.
	SessionSealKey string `env:"SMARTEVENTS_SESSION_KEY"`

	// CSRFKey is the gorilla/csrf auth key (64 hex chars, 32 bytes).
	CSRFKey string `env:"SMARTEVENTS_CSRF_KEY"`

	ResendKey   string `env:"SMARTEVENTS_RESEND_KEY"`
	ContactFrom string `env:"SMARTEVENTS_CONTACT_FROM" envDefault:"SmartEvents <noreply@smartevents.campus>"`
	ContactTo   string `env:"SMARTEVENTS_CONTACT_TO" envDefault:"info@smartevents.campus"`

	StaticDir string `env:"SMARTEVENTS_STATIC_DIR" envDefault:"static"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with production hardening.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
