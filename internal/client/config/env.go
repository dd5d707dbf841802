package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type envConfig struct {
	APIBaseURL          string        `env:"ZENFIT_API_URL"`
	RequestTimeout      time.Duration `env:"ZENFIT_REQUEST_TIMEOUT"`
	DatabaseDSN         string        `env:"ZENFIT_DB"`
	HealthCheckInterval time.Duration `env:"ZENFIT_HEALTH_INTERVAL"`
}

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the current values in place.
func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return err
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
	if ec.HealthCheckInterval != 0 {
		cfg.HealthCheckInterval = ec.HealthCheckInterval
	}
	return nil
}
