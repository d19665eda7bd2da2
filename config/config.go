package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent configuration, stored as JSON under
// ~/.config/gridtone. Flags and GRIDTONE_* environment variables
// override it at startup.
type Config struct {
	User        string `json:"user,omitempty"`
	Platform    string `json:"platform,omitempty"` // github or gitlab
	PortName    string `json:"portName,omitempty"` // MIDI output port, empty = first available
	Scale       string `json:"scale,omitempty"`    // auto or a scale name
	PalettePath string `json:"palettePath,omitempty"`

	// Offline skips fetching and plays a synthetic calendar. Runtime
	// flag, never persisted.
	Offline bool `json:"-"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Platform: "github",
		Scale:    "auto",
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gridtone"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays GRIDTONE_* environment variables. main loads a
// .env file first, so either works.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GRIDTONE_USER"); v != "" {
		c.User = v
	}
	if v := os.Getenv("GRIDTONE_PLATFORM"); v != "" {
		c.Platform = v
	}
	if v := os.Getenv("GRIDTONE_MIDI_PORT"); v != "" {
		c.PortName = v
	}
	if v := os.Getenv("GRIDTONE_SCALE"); v != "" {
		c.Scale = v
	}
}
