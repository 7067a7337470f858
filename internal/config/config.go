// Package config reads the server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	SourceMock   = "mock"
	SourceSQLite = "sqlite"
)

type Config struct {
	Port          string        `env:"PORT"               envDefault:"8080"`
	ContentSource string        `env:"ADI_CONTENT_SOURCE" envDefault:"mock"`
	DatabasePath  string        `env:"ADI_DATABASE_PATH"  envDefault:"adi.db"`
	FetchTimeout  time.Duration `env:"ADI_FETCH_TIMEOUT"  envDefault:"5s"`
	SessionTTL    time.Duration `env:"ADI_SESSION_TTL"    envDefault:"30m"`
	Transition    time.Duration `env:"ADI_TRANSITION"     envDefault:"400ms"`
	Templates     string        `env:"ADI_TEMPLATES"      envDefault:"templates/*"`
	StaticDir     string        `env:"ADI_STATIC"         envDefault:"./static"`
	ImagesDir     string        `env:"ADI_IMAGES"         envDefault:"./images"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.ContentSource {
	case SourceMock, SourceSQLite:
	default:
		return fmt.Errorf("ADI_CONTENT_SOURCE must be %q or %q, got %q", SourceMock, SourceSQLite, c.ContentSource)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("ADI_SESSION_TTL must be positive")
	}
	if c.Transition < 0 {
		return fmt.Errorf("ADI_TRANSITION must not be negative")
	}
	return nil
}
