// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Ollama.URL != "http://127.0.0.1:11434" {
		t.Errorf("Ollama.URL = %q", cfg.Ollama.URL)
	}
	if cfg.Ollama.Model != "llama3.1" {
		t.Errorf("Ollama.Model = %q", cfg.Ollama.Model)
	}
	if cfg.Assistant.TypingDelayMs != 1200 {
		t.Errorf("TypingDelayMs = %d, want 1200", cfg.Assistant.TypingDelayMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ollama.Model != Default().Ollama.Model {
		t.Errorf("model = %q, want default", cfg.Ollama.Model)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[ollama]
url = "http://10.0.0.5:11434"
model = "mistral"
timeout_secs = 30
requests_per_minute = 10

[assistant]
typing_delay_ms = 0
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ollama.URL != "http://10.0.0.5:11434" {
		t.Errorf("Ollama.URL = %q", cfg.Ollama.URL)
	}
	if cfg.Ollama.Model != "mistral" {
		t.Errorf("Ollama.Model = %q", cfg.Ollama.Model)
	}
	if cfg.Assistant.TypingDelayMs != 0 {
		t.Errorf("TypingDelayMs = %d, want 0", cfg.Assistant.TypingDelayMs)
	}
	// Untouched sections keep defaults.
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled lost its default")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ollama]\nmodel = \"mistral\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("RIMA_MODEL", "qwen2.5")
	t.Setenv("RIMA_TYPING_DELAY_MS", "50")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ollama.Model != "qwen2.5" {
		t.Errorf("Ollama.Model = %q, want env override", cfg.Ollama.Model)
	}
	if cfg.Assistant.TypingDelayMs != 50 {
		t.Errorf("TypingDelayMs = %d, want 50", cfg.Assistant.TypingDelayMs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(c *Config) {}, false},
		{"bad url", func(c *Config) { c.Ollama.URL = "not a url" }, true},
		{"empty model", func(c *Config) { c.Ollama.Model = "" }, true},
		{"zero timeout", func(c *Config) { c.Ollama.TimeoutSecs = 0 }, true},
		{"negative delay", func(c *Config) { c.Assistant.TypingDelayMs = -1 }, true},
		{"zero delay ok", func(c *Config) { c.Assistant.TypingDelayMs = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Ollama.Model = "phi3"
	cfg.UI.DarkMode = false
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Ollama.Model != "phi3" {
		t.Errorf("model = %q after round trip", loaded.Ollama.Model)
	}
	if loaded.UI.DarkMode {
		t.Error("DarkMode = true after round trip")
	}
}

func TestTelemetryDBPath(t *testing.T) {
	cfg := Default()
	cfg.Telemetry.DBPath = "/tmp/custom.db"
	if got := cfg.TelemetryDBPath(); got != "/tmp/custom.db" {
		t.Errorf("TelemetryDBPath() = %q", got)
	}

	cfg.Telemetry.Enabled = false
	if got := cfg.TelemetryDBPath(); got != "" {
		t.Errorf("disabled telemetry resolved to %q, want empty", got)
	}
}
