package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zenfit/zenfit/internal/flagx"
	"github.com/zenfit/zenfit/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	DatabaseDSN         string         `json:"database_dsn"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// When no file is given, cfg is left untouched. Only fields present in the
// file override the current values.
func parseJSON(cfg *Config) error {
	path := flagx.JSONConfigFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.HealthCheckInterval.Duration != 0 {
		cfg.HealthCheckInterval = jc.HealthCheckInterval.Duration
	}
	return nil
}
