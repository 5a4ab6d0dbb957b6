package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds settings read from the environment. Empty values mean unset.
type EnvConfig struct {
	Words    string `env:"HANGMAN_WORDS"`
	LogLevel string `env:"HANGMAN_LOG_LEVEL"`
	NoColor  bool   `env:"NO_COLOR"`
}

// LoadEnv reads EnvConfig from the process environment.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
