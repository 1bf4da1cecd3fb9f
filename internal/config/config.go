// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/resume-roaster/internal/llm"
)

// Config represents the CLI configuration. Values can come from a JSON
// file, environment variables, or CLI flags; flags win, then file, then
// environment.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Generation
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	TailorModel string `json:"tailor_model,omitempty"` // Model override for tailoring
	RoastModel  string `json:"roast_model,omitempty"`  // Model override for roasting
	ParseModel  string `json:"parse_model,omitempty"`  // Model override for profile parsing

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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

// FromEnv builds a Config from environment variables. Unset variables
// leave the corresponding fields zero.
func FromEnv() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		TailorModel: os.Getenv("GEMINI_TAILOR_MODEL"),
		RoastModel:  os.Getenv("GEMINI_ROAST_MODEL"),
		ParseModel:  os.Getenv("GEMINI_PARSE_MODEL"),
	}
	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			cfg.Port = port
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to layer a config file over environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.TailorModel == "" {
		result.TailorModel = defaults.TailorModel
	}
	if result.RoastModel == "" {
		result.RoastModel = defaults.RoastModel
	}
	if result.ParseModel == "" {
		result.ParseModel = defaults.ParseModel
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMConfig builds the model assignment for generation calls, applying
// any per-task overrides on top of the defaults.
func (c *Config) LLMConfig() *llm.Config {
	models := llm.DefaultConfig()
	if c.TailorModel != "" {
		models = models.WithModel(llm.TaskTailor, c.TailorModel)
	}
	if c.RoastModel != "" {
		models = models.WithModel(llm.TaskRoast, c.RoastModel)
	}
	if c.ParseModel != "" {
		models = models.WithModel(llm.TaskParse, c.ParseModel)
	}
	return models
}
