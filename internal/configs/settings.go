package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserKeysPath    string
	UserConfigsPath string
	UserDataPath    string
}

var UserLockboxSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	UserLockboxSettings = &UserSettings{
		UserKeysPath:    filepath.Join(dataDir, "lockbox", "keys"),
		UserConfigsPath: filepath.Join(configDir, "lockbox"),
		UserDataPath:    filepath.Join(dataDir, "lockbox"),
	}
}
