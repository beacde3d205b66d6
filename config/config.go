// Package config handles the boxctl configuration file.
//
// Config is stored at $XDG_CONFIG_HOME/boxctl/config.yaml (defaults to
// ~/.config/boxctl/config.yaml). Every field is optional; a missing
// file yields the zero config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds operator defaults for talking to the local runtime.
type Config struct {
	// Host overrides the runtime endpoint (e.g. "unix:///var/run/docker.sock").
	// Empty means the client's environment defaults.
	Host string `yaml:"host,omitempty"`
	// Signal overrides the termination signal sent by `ps kill`.
	// Empty means SIGTERM.
	Signal string `yaml:"signal,omitempty"`
}

// Path returns the default config file location. It respects
// XDG_CONFIG_HOME, falling back to ~/.config/boxctl/config.yaml.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "boxctl", "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "boxctl", "config.yaml")
}

// Load reads the config file at path, or the default location when
// path is empty. A missing default file yields the zero Config, not an
// error; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to the default location, creating directories
// as needed.
func (c *Config) Save() error {
	p := Path()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
