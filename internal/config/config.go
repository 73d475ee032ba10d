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
	// Paths
	Model  string `json:"model,omitempty" validate:"omitempty,filepath"`  // Path to encoder snapshot JSON
	Jobs   string `json:"jobs,omitempty" validate:"omitempty,filepath"`   // Path to job postings JSON
	Resume string `json:"resume,omitempty" validate:"omitempty,filepath"` // Path to candidate resume text file
	Output string `json:"output,omitempty"`                               // Path to write ranked matches JSON

	// Matching behavior
	Threshold     float64 `json:"threshold,omitempty" validate:"gte=0,lte=1"` // Minimum score to keep a match (0.0-1.0)
	MaxConcurrent int     `json:"max_concurrent,omitempty" validate:"gte=0"`  // Parallel scoring workers (0 = number of CPUs)
	MaxSeqLen     int     `json:"max_seq_len,omitempty" validate:"gte=0"`     // Override encoder sequence length (0 = snapshot default)

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
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

// Validate checks that the configuration has valid values using the validator,
// then checks that any referenced input files exist.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Model != "" {
		if _, err := os.Stat(c.Model); os.IsNotExist(err) {
			return fmt.Errorf("config error: model file not found: %s", c.Model)
		}
	}
	if c.Jobs != "" {
		if _, err := os.Stat(c.Jobs); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.Jobs)
		}
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.Threshold == 0 {
		result.Threshold = defaults.Threshold
	}
	if result.MaxConcurrent == 0 {
		result.MaxConcurrent = defaults.MaxConcurrent
	}
	if result.MaxSeqLen == 0 {
		result.MaxSeqLen = defaults.MaxSeqLen
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
