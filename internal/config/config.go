// Package config defines the application configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/jdmaguire/shoestore/pkg/configloader"
)

var _ configloader.Validator = (*Config)(nil)

// Defaults returns the built-in configuration values, used when neither
// config.yaml nor the environment overrides them.
func Defaults() map[string]any {
	return map[string]any{
		"storage.path": "inventory.txt",
		"log.level":    "info",
	}
}

type Config struct {
	Storage StorageConfig `koanf:"storage"`
	Log     LogConfig     `koanf:"log"`
}

// StorageConfig locates the flat file backing the inventory.
type StorageConfig struct {
	Path string `koanf:"path"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("\n--- Storage ---\n")
	b.WriteString(fmt.Sprintf("  storage.path: %s\n", c.Storage.Path))
	b.WriteString("\n--- Log ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path must not be empty")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
