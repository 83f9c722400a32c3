// Package config loads the top-level YAML configuration and fans it out
// to the subsystems. Missing files and missing keys fall back to the
// defaults each subsystem defines for itself.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/babysitterd/chasm/internal/game"
	"github.com/babysitterd/chasm/internal/logger"
	"github.com/babysitterd/chasm/internal/save"
	"github.com/babysitterd/chasm/internal/server"
)

// Config is the whole process configuration.
type Config struct {
	// Seed fixes the dungeon RNG. Zero picks a time-derived seed per
	// session.
	Seed int64 `yaml:"seed"`

	Game    game.Config   `yaml:"game"`
	Save    save.Config   `yaml:"save"`
	Server  server.Config `yaml:"server"`
	Logging logger.Config `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Game:    game.DefaultConfig(),
		Save:    save.DefaultConfig(),
		Server:  server.DefaultConfig(),
		Logging: logger.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a YAML file. A missing file returns
// the defaults; a present but unparsable file is an error. The LOG_*
// environment variables override the logging section either way.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Defaults stand.
		default:
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	config.Logging = logger.ApplyEnvOverrides(config.Logging)
	return config, nil
}
