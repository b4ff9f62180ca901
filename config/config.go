// Package config handles configuration loading and management for fmanalyzer.
// Configuration is loaded from:
// 1. ~/.config/fmanalyzer/config.yaml (user-level)
// 2. .fmanalyzer/config.yaml (project-level override)
// 3. Environment variables (highest priority)
//
// Configuration only shapes diagnostics. It never changes what the
// application writes to standard output.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a log encoding.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// ProjectPath is the project-level config file, relative to the working directory.
const ProjectPath = ".fmanalyzer/config.yaml"

// LogConfig holds settings for diagnostic logging.
type LogConfig struct {
	// Level is the minimum level written (debug, info, warn, error)
	Level string `yaml:"level"`

	// Format is the log encoding (console, json)
	Format Format `yaml:"format"`

	// File redirects logs from stderr to a file, opened in append mode
	File string `yaml:"file,omitempty"`
}

// Config is the main configuration structure.
type Config struct {
	// Log holds logging settings
	Log LogConfig `yaml:"log"`

	// Debug forces debug-level logging regardless of Log.Level
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: FormatConsole,
		},
		Debug: false,
	}
}

// Load reads configuration from standard locations and merges with defaults.
// Priority (highest to lowest):
// 1. Environment variables
// 2. Project config (.fmanalyzer/config.yaml)
// 3. User config (~/.config/fmanalyzer/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try user config first
	userConfigPath, err := userConfigPath()
	if err == nil {
		if data, err := os.ReadFile(userConfigPath); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing user config %s: %w", userConfigPath, err)
			}
		}
	}

	// Try project config (overrides user config)
	if data, err := os.ReadFile(ProjectPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing project config %s: %w", ProjectPath, err)
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadFromPath reads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	case "":
		// Will use default
	default:
		errs = append(errs, fmt.Sprintf("unknown log level: %s", c.Log.Level))
	}

	switch c.Log.Format {
	case FormatConsole, FormatJSON, "":
	default:
		errs = append(errs, fmt.Sprintf("unknown log format: %s", c.Log.Format))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// userConfigPath returns the path to the user configuration file.
func userConfigPath() (string, error) {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "fmanalyzer", "config.yaml"), nil
	}

	// Fall back to ~/.config
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "fmanalyzer", "config.yaml"), nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FMANALYZER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("FMANALYZER_LOG_FORMAT"); v != "" {
		cfg.Log.Format = Format(strings.ToLower(v))
	}
	if v := os.Getenv("FMANALYZER_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	if v := os.Getenv("FMANALYZER_DEBUG"); v == "1" || strings.ToLower(v) == "true" {
		cfg.Debug = true
	}
}

// WriteDefault creates a default config file at the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()

	// Create parent directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Add header comment
	content := "# fmanalyzer configuration\n# Settings here affect diagnostics on stderr only.\n\n" + string(data)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
