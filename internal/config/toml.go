// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Shoe ShoeConfig `toml:"shoe"`
	UI   UIConfig   `toml:"ui"`
}

// ShoeConfig maps shoe-related settings.
type ShoeConfig struct {
	Decks        *int  `toml:"decks"`
	ShoeLimit    *bool `toml:"shoe-limit"`
	ColdOverride *bool `toml:"cold-override"`
}

// UIConfig maps presentation settings.
type UIConfig struct {
	Plain *bool `toml:"plain"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
