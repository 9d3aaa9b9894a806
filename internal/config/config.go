// Package config loads and saves the companion's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// Config represents the application configuration.
type Config struct {
	// Meta catalogue configuration
	Catalogue CatalogueConfig `toml:"catalogue"`

	// Analysis history database configuration
	History HistoryConfig `toml:"history"`

	// Watch mode configuration
	Watch WatchConfig `toml:"watch"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// CatalogueConfig contains meta catalogue settings.
type CatalogueConfig struct {
	FilePath string `toml:"file_path"` // Path to a catalogue JSON override (empty = embedded)
}

// HistoryConfig contains analysis history settings.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"` // Persist analyses to the history database
	Path    string `toml:"path"`    // SQLite database path (empty = default under config dir)
}

// WatchConfig contains watch mode settings.
type WatchConfig struct {
	Debounce string `toml:"debounce"` // Re-analysis debounce (e.g. "500ms")
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool   `toml:"debug_mode"` // Enable debug logging
	Locale    string `toml:"locale"`     // BCP-47 tag for display names ("en", "pt-BR")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalogue: CatalogueConfig{
			FilePath: "",
		},
		History: HistoryConfig{
			Enabled: false,
			Path:    "",
		},
		Watch: WatchConfig{
			Debounce: "500ms",
		},
		App: AppConfig{
			DebugMode: false,
			Locale:    "en",
		},
	}
}

// Dir returns the configuration directory, creating it if needed.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".ptcg-companion")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return configDir, nil
}

func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads the configuration from disk. Returns default config if the
// file does not exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
		return fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
	}
	if c.App.Locale != "" {
		if _, err := language.Parse(c.App.Locale); err != nil {
			return fmt.Errorf("invalid locale %q: %w", c.App.Locale, err)
		}
	}
	return nil
}

// GetWatchDebounce returns the watch debounce as a duration.
func (c *Config) GetWatchDebounce() (time.Duration, error) {
	return time.ParseDuration(c.Watch.Debounce)
}

// GetLocale returns the configured locale as a language tag, defaulting to
// English when unset or unparseable.
func (c *Config) GetLocale() language.Tag {
	if c.App.Locale == "" {
		return language.English
	}
	tag, err := language.Parse(c.App.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
