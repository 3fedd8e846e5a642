// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	DBPath   string `envconfig:"DB_PATH" default:"./data/payables.db"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Basic auth credentials for the API. When both are empty the API is
	// served unauthenticated.
	AuthUser string `envconfig:"AUTH_USER"`
	AuthPass string `envconfig:"AUTH_PASS"`

	// Default reminder window for the dashboard, in days.
	ReminderDays int `envconfig:"REMINDER_DAYS" default:"7"`
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("processing environment: %w", err)
	}
	if cfg.ReminderDays <= 0 {
		cfg.ReminderDays = 7
	}
	return cfg, nil
}
