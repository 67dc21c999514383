package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DealerStandsOn int    `env:"BLACKJACK_DEALER_STANDS_ON" envDefault:"17"`
	Seed           int64  `env:"BLACKJACK_SEED" envDefault:"0"`
	LogLevel       string `env:"BLACKJACK_LOG_LEVEL" envDefault:"warn"`
	HistoryLimit   int    `env:"BLACKJACK_HISTORY_LIMIT" envDefault:"5"`
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DealerStandsOn < 2 || c.DealerStandsOn > 21 {
		return fmt.Errorf("BLACKJACK_DEALER_STANDS_ON must be between 2 and 21, got %d", c.DealerStandsOn)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("BLACKJACK_HISTORY_LIMIT must not be negative, got %d", c.HistoryLimit)
	}
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("BLACKJACK_LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}
