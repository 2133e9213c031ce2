// Package config handles TOML-based configuration loading and validation.
// The file is parsed as data only; nothing in it is executed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"cinefront/internal/httputil"
)

const appName = "cinefront"

// APIKeyEnv names the environment variable that overrides the API key.
const APIKeyEnv = "TMDB_API_KEY"

// Config holds all application configuration.
type Config struct {
	APIKey               string `toml:"api_key"`
	BaseURL              string `toml:"base_url"`
	ImageBaseURL         string `toml:"image_base_url"`
	OriginalImageBaseURL string `toml:"original_image_base_url"`
	PlaybackBase         string `toml:"playback_base"`
	TrendingWindow       string `toml:"trending_window"`
	Launcher             string `toml:"launcher"`
	Theme                string `toml:"theme"`
	TimeoutSeconds       int    `toml:"timeout_seconds"`
	Debug                bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		BaseURL:              "https://api.themoviedb.org/3",
		ImageBaseURL:         "https://image.tmdb.org/t/p/w500",
		OriginalImageBaseURL: "https://image.tmdb.org/t/p/original",
		PlaybackBase:         "https://vidsrc.cc/v2/embed",
		TrendingWindow:       "week",
		Launcher:             "browser",
		Theme:                "dark",
		TimeoutSeconds:       30,
		Debug:                false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults, then applies the
// environment. If the config file doesn't exist, defaults are used.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		c.APIKey = key
	}
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	urls := []struct {
		name  string
		value string
	}{
		{"base_url", c.BaseURL},
		{"image_base_url", c.ImageBaseURL},
		{"original_image_base_url", c.OriginalImageBaseURL},
		{"playback_base", c.PlaybackBase},
	}
	for _, u := range urls {
		if err := httputil.ValidateURL(u.value); err != nil {
			return fmt.Errorf("%s: %w", u.name, err)
		}
	}

	validWindows := map[string]bool{"day": true, "week": true}
	if !validWindows[c.TrendingWindow] {
		return fmt.Errorf("unsupported trending window %q (valid: day, week)", c.TrendingWindow)
	}

	if c.Launcher == "" || strings.ContainsAny(c.Launcher, " \t\n") {
		return fmt.Errorf("invalid launcher %q (use browser, print, or a command name)", c.Launcher)
	}

	if !slices.Contains([]string{"dark", "light"}, c.Theme) {
		return fmt.Errorf("unsupported theme %q (valid: dark, light)", c.Theme)
	}

	if c.TimeoutSeconds < 1 || c.TimeoutSeconds > 300 {
		return fmt.Errorf("timeout_seconds must be between 1 and 300, got %d", c.TimeoutSeconds)
	}

	return nil
}

// HasAPIKey reports whether a catalog API key is configured.
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// PreferencesPath returns the path to the preferences database.
func PreferencesPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, appName, "prefs.db"), nil
}
