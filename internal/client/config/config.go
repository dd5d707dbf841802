// Package config loads runtime settings for the Zenfit CLI.
//
// Sources are overlaid in order, later ones winning:
//
//	defaults -> JSON file (-c/-config) -> environment -> flags
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - APIBaseURL: base endpoint of the Zenfit REST API, including /api.
//   - RequestTimeout: per-request timeout applied by the HTTP client.
//   - DatabaseDSN: path/DSN of the local sqlite database holding the
//     persisted credential.
//   - HealthCheckInterval: how often the CLI probes server reachability.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	DatabaseDSN         string
	HealthCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 30 * time.Second
	c.DatabaseDSN = "zenfit.db"
	c.HealthCheckInterval = 30 * time.Second
}

// Load constructs a Config from all sources.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
