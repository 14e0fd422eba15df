// internal/config/config.go

// Package config loads server configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration.
type Config struct {
	// Port is the TCP port the HTTP/WebSocket server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// StrictRules enables turn and card legality validation. Off by
	// default for compatibility with clients written against the
	// permissive behavior.
	StrictRules bool `env:"UNO_STRICT_RULES" envDefault:"false"`
}

// Load reads an optional .env file and parses the environment.
func Load() (Config, error) {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()
	return env.ParseAs[Config]()
}
