package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds the CLI configuration file.
type Settings struct {
	General GeneralSettings `toml:"general"`
	Storage StorageSettings `toml:"storage"`
}

// GeneralSettings holds output preferences.
type GeneralSettings struct {
	DefaultFormat string `toml:"default_format"`
	Verbose       bool   `toml:"verbose"`
}

// StorageSettings selects where history and preferences live.
type StorageSettings struct {
	DataDir   string `toml:"data_dir,omitempty"`
	RedisAddr string `toml:"redis_addr,omitempty"`
	RedisDB   int    `toml:"redis_db,omitempty"`
}

// DefaultSettings returns the default configuration.
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{
			DefaultFormat: "console",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "loancalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "loancalc")
}

// SettingsPath returns the full path to the config file.
func SettingsPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the directory holding the history database.
func (s Settings) DataDir() string {
	if s.Storage.DataDir != "" {
		return s.Storage.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "loancalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "loancalc")
}

// LoadSettings reads the config file at path, returning defaults if it doesn't exist.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveSettings writes the config to path, creating its directory.
func SaveSettings(path string, cfg Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
