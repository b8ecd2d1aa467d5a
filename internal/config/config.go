// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Search
	Query          string `json:"query,omitempty" validate:"omitempty,min=2"`         // Job search query
	Location       string `json:"location,omitempty"`                                 // Job search location
	LimitPerSource int    `json:"limit_per_source,omitempty" validate:"gte=0,lte=50"` // Max jobs per source

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`                       // Use headless browser for SPA boards
	Verbose     bool   `json:"verbose,omitempty"`                           // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty" validate:"omitempty"` // PostgreSQL connection URL
}

// Defaults returns the built-in search parameters used when neither a
// config file nor CLI flags provide them.
func Defaults() Config {
	return Config{
		Query:          "software developer",
		Location:       "bangalore",
		LimitPerSource: 5,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Query == "" {
		result.Query = defaults.Query
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.LimitPerSource == 0 {
		result.LimitPerSource = defaults.LimitPerSource
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
