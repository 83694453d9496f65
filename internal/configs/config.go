package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the user-adjustable settings from config.toml.
type Config struct {
	// OutputSuffix is appended to encrypted file names.
	OutputSuffix string `toml:"output_suffix"`

	// KeyDirectory overrides where keygen writes key pairs.
	KeyDirectory string `toml:"key_directory"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		OutputSuffix: ".lockbox",
		KeyDirectory: UserLockboxSettings.UserKeysPath,
	}
}

// ConfigFilePath returns the location of the user config file.
func ConfigFilePath() string {
	return filepath.Join(UserLockboxSettings.UserConfigsPath, "config.toml")
}

// LoadUserConfig reads config.toml, filling in defaults for anything unset.
// A missing file is not an error; the defaults are returned.
func LoadUserConfig() (Config, error) {
	cfg := DefaultConfig()

	path := ConfigFilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	loaded := Config{}
	if err := LoadTOML(path, &loaded); err != nil {
		return cfg, fmt.Errorf("failed to load config file at %s: %w", path, err)
	}

	if loaded.OutputSuffix != "" {
		cfg.OutputSuffix = loaded.OutputSuffix
	}
	if loaded.KeyDirectory != "" {
		cfg.KeyDirectory = loaded.KeyDirectory
	}
	return cfg, nil
}
