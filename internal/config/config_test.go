package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TrendingWindow != "week" {
		t.Errorf("default trending window = %q, want week", cfg.TrendingWindow)
	}
	if cfg.Launcher != "browser" {
		t.Errorf("default launcher = %q, want browser", cfg.Launcher)
	}
	if cfg.Theme != "dark" {
		t.Errorf("default theme = %q, want dark", cfg.Theme)
	}
	if cfg.HasAPIKey() {
		t.Error("default config should have no API key")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"http base", func(c *Config) { c.BaseURL = "http://api.themoviedb.org/3" }, true},
		{"empty image base", func(c *Config) { c.ImageBaseURL = "" }, true},
		{"bad playback base", func(c *Config) { c.PlaybackBase = "javascript:alert(1)" }, true},
		{"invalid window", func(c *Config) { c.TrendingWindow = "month" }, true},
		{"valid day window", func(c *Config) { c.TrendingWindow = "day" }, false},
		{"empty launcher", func(c *Config) { c.Launcher = "" }, true},
		{"launcher with args", func(c *Config) { c.Launcher = "firefox --new-tab" }, true},
		{"custom launcher", func(c *Config) { c.Launcher = "firefox" }, false},
		{"print launcher", func(c *Config) { c.Launcher = "print" }, false},
		{"invalid theme", func(c *Config) { c.Theme = "sepia" }, true},
		{"light theme", func(c *Config) { c.Theme = "light" }, false},
		{"zero timeout", func(c *Config) { c.TimeoutSeconds = 0 }, true},
		{"huge timeout", func(c *Config) { c.TimeoutSeconds = 3600 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromTOML(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	writeConfig(t, `
api_key = "file-key"
trending_window = "day"
launcher = "print"
theme = "light"
timeout_seconds = 10
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APIKey != "file-key" {
		t.Errorf("api_key = %q, want file-key", cfg.APIKey)
	}
	if cfg.TrendingWindow != "day" {
		t.Errorf("trending_window = %q, want day", cfg.TrendingWindow)
	}
	if cfg.Launcher != "print" {
		t.Errorf("launcher = %q, want print", cfg.Launcher)
	}
	if cfg.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.Theme)
	}
	if cfg.TimeoutSeconds != 10 {
		t.Errorf("timeout_seconds = %d, want 10", cfg.TimeoutSeconds)
	}
	if cfg.BaseURL != Default().BaseURL {
		t.Errorf("unset base_url should keep default, got %q", cfg.BaseURL)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	writeConfig(t, `api_key = "file-key"`)
	t.Setenv(APIKeyEnv, "env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("api_key = %q, want env-key", cfg.APIKey)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	writeConfig(t, `trending_window = "year"`)

	if _, err := Load(); err == nil {
		t.Error("Load() should reject an invalid trending window")
	}

	writeConfig(t, `theme = [`)
	if _, err := Load(); err == nil {
		t.Error("Load() should reject malformed TOML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(APIKeyEnv, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if cfg.Launcher != "browser" {
		t.Errorf("missing file should return defaults, got launcher = %q", cfg.Launcher)
	}
}

func TestPreferencesPath(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)

	path, err := PreferencesPath()
	if err != nil {
		t.Fatalf("PreferencesPath() error: %v", err)
	}
	want := filepath.Join(dataDir, "cinefront", "prefs.db")
	if path != want {
		t.Errorf("got %q, want %q", path, want)
	}
}
