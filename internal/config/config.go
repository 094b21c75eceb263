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
	Data        string `json:"data,omitempty" validate:"omitempty"`         // Path to the cleaned dataset CSV
	Out         string `json:"out,omitempty"`                               // Output path, "-" for stdout
	OptionsFile string `json:"options_file,omitempty" validate:"omitempty"` // Path to an analysis options JSON file

	// Report shape
	Lang     string   `json:"lang,omitempty" validate:"omitempty,oneof=en fa both"`
	Format   string   `json:"format,omitempty" validate:"omitempty,oneof=markdown text json"`
	Sections []string `json:"sections,omitempty"` // Section slugs to run; empty means all

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

var validate = validator.New(validator.WithRequiredStructEnabled())

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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errors, ok := err.(validator.ValidationErrors); ok && len(errors) > 0 {
			f := errors[0]
			return fmt.Errorf("config error: field %q failed %q validation", f.Field(), f.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Data != "" {
		if _, err := os.Stat(c.Data); os.IsNotExist(err) {
			return fmt.Errorf("config error: data file not found: %s", c.Data)
		}
	}
	if c.OptionsFile != "" {
		if _, err := os.Stat(c.OptionsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: options file not found: %s", c.OptionsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Data == "" {
		result.Data = defaults.Data
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.OptionsFile == "" {
		result.OptionsFile = defaults.OptionsFile
	}
	if result.Lang == "" {
		result.Lang = defaults.Lang
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if len(result.Sections) == 0 {
		result.Sections = defaults.Sections
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
