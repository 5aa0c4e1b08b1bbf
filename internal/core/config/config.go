// Package config handles configuration loading and validation for
// zentasks.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	TUI       TUIConfig       `yaml:"tui"`
	Generator GeneratorConfig `yaml:"generator"`
	DataDir   string          `yaml:"-"` // set by caller, not from config file
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// GeneratorConfig controls the subtask suggestion service.
type GeneratorConfig struct {
	// Enabled gates the external generation call entirely. Disabled
	// means breakdown requests resolve to an empty suggestion list.
	Enabled *bool `yaml:"enabled"`
	// Model is the generation model name; empty uses the client default.
	Model string `yaml:"model"`
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`
}

// IsEnabled reports whether generation is on. Unset means enabled.
func (g GeneratorConfig) IsEnabled() bool {
	return g.Enabled == nil || *g.Enabled
}

// APIKey resolves the generator API key from the environment.
func (g GeneratorConfig) APIKey() string {
	env := g.APIKeyEnv
	if env == "" {
		env = "GEMINI_API_KEY"
	}
	return os.Getenv(env)
}

// Default returns the configuration used when no config file exists.
func Default(dataDir string) *Config {
	return &Config{
		TUI:     TUIConfig{Theme: "dark"},
		DataDir: dataDir,
	}
}

// Load reads the YAML config at path. A missing file yields defaults;
// a malformed file is an error.
func Load(path, dataDir string) (*Config, error) {
	cfg := Default(dataDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.DataDir = dataDir

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.TUI.Theme {
	case "":
		c.TUI.Theme = "dark"
	case "dark", "light":
	default:
		return fmt.Errorf("unknown theme %q (valid: dark, light)", c.TUI.Theme)
	}
	return nil
}
