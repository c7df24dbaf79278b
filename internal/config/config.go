// Package config loads and saves the travel-planner config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all travel-planner configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Server  ServerConfig  `toml:"server"`
	Export  ExportConfig  `toml:"export"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	Path string `toml:"path"`
}

// ServerConfig holds web front end settings.
type ServerConfig struct {
	ListenAddr   string `toml:"listen_addr"`
	SecureCookie bool   `toml:"secure_cookie"`
}

// ExportConfig holds itinerary export settings.
type ExportConfig struct {
	Dir string `toml:"dir,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{Path: "travel_planner.db"},
		Server:  ServerConfig{ListenAddr: ":8080"},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "travel-planner")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "travel-planner")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
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

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// DBPath returns the database path, letting the DB_PATH env var override
// the config file.
func DBPath(cfg Config) string {
	if path := os.Getenv("DB_PATH"); path != "" {
		return path
	}
	return cfg.Storage.Path
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
