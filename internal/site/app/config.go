package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// DatabaseFile is the SQLite file backing the local store.
	DatabaseFile string `env:"SITE_DATABASE_FILE" envDefault:"site.db"`

	// Namespace prefixes every storage key, isolating this site's collections
	// from anything else sharing the database.
	Namespace string `env:"SITE_NAMESPACE" envDefault:"growthverse"`

	// SessionSecret signs the persisted session token. Leave empty to use a
	// dev-only default; set it for any shared deployment.
	SessionSecret string `env:"SITE_SESSION_SECRET"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
