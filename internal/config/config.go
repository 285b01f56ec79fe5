// Package config loads the backend configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

type Config struct {
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	LogFormat string `env:"LOG_FORMAT"`
	Port      string `env:"PORT" envDefault:"8080"`
	DBPath    string `env:"DB_PATH" envDefault:"data/financas.db"`
	SentryDSN string `env:"SENTRY_DSN"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables take precedence.
func Load() (Config, error) {
	// Missing .env files are fine, the environment is authoritative
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
