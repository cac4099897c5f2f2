// Package config loads the runtime configuration from the environment,
// with an optional .env file for development.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// AppName is stamped into backup archive metadata.
	AppName string `envconfig:"APP_NAME" default:"CuentasClaras"`

	// DBPath is the SQLite database file; parent directories are
	// created on open.
	DBPath string `envconfig:"DB_PATH" default:"./data/cuentas.db"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
