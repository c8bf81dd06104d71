package config

import (
	"os"
	"path/filepath"
)

const appDirName = "huey"

// Dir returns the directory huey keeps its configuration and preferences in.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appDirName)
}

// DefaultPath is the configuration file read when --config is not given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// StorePath resolves the preference store location for the configured
// backend.
func (s StorageConfig) StorePath() string {
	if s.Path != "" {
		return s.Path
	}
	if s.Backend == "sqlite" {
		return filepath.Join(Dir(), "prefs.db")
	}
	return filepath.Join(Dir(), "prefs.json")
}
