package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
}

var UserKwalletSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	UserKwalletSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "kwallet"),
	}
}

// ConfigPath returns the path of the config file.
func ConfigPath() string {
	return filepath.Join(UserKwalletSettings.UserConfigsPath, "config.toml")
}
