// Package config loads the gcdir configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mydehq/gcdir/internal/types"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the config directory
const FileName = "config.yml"

var defaults = types.Config{
	LogLevel: "info",
	Lock:     true,
	Summary:  false,
}

// GetDefaults returns a copy of the built-in configuration
func GetDefaults() *types.Config {
	return defaults.Clone()
}

// GlobalPath returns ~/.config/gcdir/config.yml (or the XDG equivalent)
func GlobalPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "gcdir", FileName), nil
}

// LoadGlobal loads the global config file, falling back to defaults when it does not exist
func LoadGlobal() (*types.Config, error) {
	path, err := GlobalPath()
	if err != nil {
		return GetDefaults(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return GetDefaults(), nil
	}
	return cfg, err
}

// Load reads a config file on top of the defaults and validates it
func Load(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := GetDefaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories as needed
func Save(path string, cfg *types.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
