package types

import (
	"fmt"
	"slices"
)

// LogLevels lists the accepted values for Config.LogLevel
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the gcdir configuration file (~/.config/gcdir/config.yml)
type Config struct {
	LogLevel string `yaml:"log_level"`
	Lock     bool   `yaml:"lock"`    // Take the advisory run lock on the game directory
	Summary  bool   `yaml:"summary"` // Print the operations table after a run

	Source string `yaml:"-"` // File the config was loaded from, empty for defaults
}

// Clone returns a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	res := *c
	return &res
}

// Validate checks that every field holds an accepted value
func (c *Config) Validate() error {
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q (want one of %v)", c.LogLevel, LogLevels)
	}
	return nil
}
