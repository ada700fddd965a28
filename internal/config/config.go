// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for rima.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/rimahq/rima-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete rima configuration.
type Config struct {
	Version string `toml:"version"`

	// Ollama (text-generation collaborator) configuration
	Ollama OllamaConfig `toml:"ollama"`

	// Assistant behavior
	Assistant AssistantConfig `toml:"assistant"`

	// Telemetry configuration
	Telemetry TelemetryConfig `toml:"telemetry"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// SeedPath optionally overrides the built-in startup fixture with a
	// JSON file.
	SeedPath string `toml:"seed_path"`
}

// OllamaConfig contains collaborator connection settings.
type OllamaConfig struct {
	// URL is the Ollama server base URL
	URL string `toml:"url"`
	// Model is the model used for assistant replies
	Model string `toml:"model"`
	// TimeoutSecs bounds a single chat call
	TimeoutSecs int `toml:"timeout_secs"`
	// RequestsPerMinute paces request starts
	RequestsPerMinute int `toml:"requests_per_minute"`
}

// AssistantConfig contains assistant dispatch settings.
type AssistantConfig struct {
	// TypingDelayMs is the artificial pause before a reply appears
	TypingDelayMs int `toml:"typing_delay_ms"`
}

// TelemetryConfig contains dispatch telemetry settings.
type TelemetryConfig struct {
	// Enabled persists dispatch events to the database below
	Enabled bool `toml:"enabled"`
	// DBPath is the SQLite database path (empty = ~/.rima/telemetry.db)
	DBPath string `toml:"db_path"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// DarkMode selects the dark palette
	DarkMode bool `toml:"dark_mode"`
	// ShowTimestamps renders message times in transcripts
	ShowTimestamps bool `toml:"show_timestamps"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Ollama: OllamaConfig{
			URL:               "http://127.0.0.1:11434",
			Model:             "llama3.1",
			TimeoutSecs:       60,
			RequestsPerMinute: 30,
		},
		Assistant: AssistantConfig{
			TypingDelayMs: 1200,
		},
		Telemetry: TelemetryConfig{
			Enabled: true,
		},
		UI: UIConfig{
			DarkMode:       true,
			ShowTimestamps: true,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the rima configuration directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".rima"), nil
}

// Path returns the path to the TOML config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file at path (or the default location when path is
// empty), applies environment overrides and validates. A missing file is
// not an error; defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults stand.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies RIMA_* environment variables on top of file
// values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RIMA_OLLAMA_URL"); v != "" {
		cfg.Ollama.URL = v
	}
	if v := os.Getenv("RIMA_MODEL"); v != "" {
		cfg.Ollama.Model = v
	}
	if v := os.Getenv("RIMA_TYPING_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Assistant.TypingDelayMs = n
		}
	}
	if v := os.Getenv("RIMA_TELEMETRY_DB"); v != "" {
		cfg.Telemetry.DBPath = v
	}
	if v := os.Getenv("RIMA_SEED"); v != "" {
		cfg.SeedPath = v
	}
}

// Validate checks the config for values that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Ollama.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid ollama url %q", c.Ollama.URL)
	}
	if c.Ollama.Model == "" {
		return errors.New("ollama model must not be empty")
	}
	if c.Ollama.TimeoutSecs <= 0 {
		return fmt.Errorf("ollama timeout must be positive, got %d", c.Ollama.TimeoutSecs)
	}
	if c.Assistant.TypingDelayMs < 0 {
		return fmt.Errorf("typing delay must not be negative, got %d", c.Assistant.TypingDelayMs)
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the config to path (or the default location when path is
// empty) atomically.
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := Path()
		if err != nil {
			return err
		}
		path = p
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// TelemetryDBPath resolves the telemetry database location, honoring the
// enabled flag: empty means telemetry stays in memory.
func (c *Config) TelemetryDBPath() string {
	if !c.Telemetry.Enabled {
		return ""
	}
	if c.Telemetry.DBPath != "" {
		return c.Telemetry.DBPath
	}
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "telemetry.db")
}
