// Package config stores bankshell user preferences on disk.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds user preferences
type Config struct {
	Theme   string        `json:"theme"` // "light", "dark", or "auto"
	Logging LoggingConfig `json:"logging"`
}

// LoggingConfig controls the category file loggers under .bankshell/logs.
// With DebugMode false nothing is ever written.
type LoggingConfig struct {
	DebugMode  bool   `json:"debug_mode"`
	Level      string `json:"level"` // debug/info/warn/error
	JSONFormat bool   `json:"json_format"`
}

// Themes that Config.Theme may hold.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Theme: ThemeAuto,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ValidTheme reports whether s names a known theme.
func ValidTheme(s string) bool {
	switch s {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}

// Dir returns the directory where config is stored
func Dir() (string, error) {
	// Prefer project-local .bankshell directory if present or creatable
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".bankshell")
		if stat, err := os.Stat(localDir); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return localDir, nil
		}
	}

	// Fallback to home-level config
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".bankshell"), nil
}

// File returns the full path to the config file
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from disk
func Load() (Config, error) {
	path, err := File()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	if cfg.Theme == "" {
		cfg.Theme = ThemeAuto
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}

// Save writes the configuration to disk
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := File()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
