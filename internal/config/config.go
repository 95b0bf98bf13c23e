// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"oneway-quote/internal/errors"
	"oneway-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Business identifies the agency printed on invoices
	Business BusinessConfig `json:"business"`

	// Locale controls money and date formatting
	Locale LocaleConfig `json:"locale"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Export contains image/workbook export settings
	Export ExportConfig `json:"export"`

	// Advisor configures the pitch generator
	Advisor AdvisorConfig `json:"advisor"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// BusinessConfig identifies the agency
type BusinessConfig struct {
	// Name appears in the invoice header and the pitch prompt
	Name string `json:"name"`
}

// LocaleConfig controls money formatting
type LocaleConfig struct {
	// Language is a BCP 47 tag used for digit grouping
	Language string `json:"language"`

	// Currency is the ISO 4217 code
	Currency string `json:"currency"`

	// Symbol overrides the currency symbol; empty derives it from Language
	Symbol string `json:"symbol,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default format of the quote command
	DefaultFormat string `json:"default_format"`

	// NoColor disables terminal styling
	NoColor bool `json:"no_color"`
}

// ExportConfig contains export settings
type ExportConfig struct {
	// ImageWidth is the PNG canvas width in pixels
	ImageWidth int `json:"image_width"`
}

// AdvisorConfig configures the generative pitch client
type AdvisorConfig struct {
	// Endpoint is the API base URL
	Endpoint string `json:"endpoint"`

	// Model is the model name
	Model string `json:"model"`

	// APIKeyEnv names the environment variable holding the API key
	APIKeyEnv string `json:"api_key_env"`

	// TimeoutSeconds bounds a single pitch request
	TimeoutSeconds int `json:"timeout_seconds"`
}

// DefaultPath returns $HOME/.oneway-quote.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".oneway-quote.json")
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Business: BusinessConfig{
			Name: "OneWay media",
		},
		Locale: LocaleConfig{
			Language: "id",
			Currency: "IDR",
			Symbol:   "Rp",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Export: ExportConfig{
			ImageWidth: 480,
		},
		Advisor: AdvisorConfig{
			Endpoint:       "https://generativelanguage.googleapis.com/v1beta",
			Model:          "gemini-3-flash-preview",
			APIKeyEnv:      "API_KEY",
			TimeoutSeconds: 30,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "invalid config %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values the formatters and exporters rely on
func (c *Config) Validate() error {
	if c.Locale.Language == "" {
		return errors.Config("locale.language must not be empty")
	}
	if c.Locale.Currency == "" {
		return errors.Config("locale.currency must not be empty")
	}
	if c.Export.ImageWidth < 200 {
		return errors.Newf(errors.TypeConfig, "export.image_width must be at least 200, got %d", c.Export.ImageWidth)
	}
	if c.Advisor.TimeoutSeconds <= 0 {
		return errors.Config("advisor.timeout_seconds must be positive")
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
