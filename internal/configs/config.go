package configs

import (
	"fmt"
	"os"

	"github.com/kdewallet/kwallet-go/kwallet"
)

const (
	DefaultAppID  = "kwallet-cli"
	DefaultFolder = "Passwords"
)

type Config struct {
	Client ClientConfig `toml:"client" json:"client"`
	DBus   DBusConfig   `toml:"dbus" json:"dbus"`
}

type ClientConfig struct {
	AppID  string `toml:"app_id" json:"app_id"`
	Wallet string `toml:"wallet" json:"wallet"`
	Folder string `toml:"folder" json:"folder"`
}

type DBusConfig struct {
	Service   string `toml:"service" json:"service"`
	Path      string `toml:"path" json:"path"`
	Interface string `toml:"interface" json:"interface"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() *Config {
	return &Config{
		Client: ClientConfig{
			AppID:  DefaultAppID,
			Folder: DefaultFolder,
		},
		DBus: DBusConfig{
			Service:   kwallet.DefaultBusName,
			Path:      kwallet.DefaultObjectPath,
			Interface: kwallet.DefaultInterface,
		},
	}
}

// LoadConfig loads the config file, filling unset fields from Defaults.
func LoadConfig() (*Config, error) {
	configPath := ConfigPath()

	config := &Config{}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Defaults(), nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.fillDefaults()
	return config, nil
}

// SaveConfig writes config to the config file.
func SaveConfig(config *Config) error {
	if err := SaveTOML(ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// ConfigExists reports whether the config file is present.
func ConfigExists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// BusConfig converts the [dbus] table for kwallet.DialSession.
func (c *Config) BusConfig() kwallet.DBusConfig {
	return kwallet.DBusConfig{
		BusName:    c.DBus.Service,
		ObjectPath: c.DBus.Path,
		Interface:  c.DBus.Interface,
	}
}

func (c *Config) fillDefaults() {
	d := Defaults()
	if c.Client.AppID == "" {
		c.Client.AppID = d.Client.AppID
	}
	if c.Client.Folder == "" {
		c.Client.Folder = d.Client.Folder
	}
	if c.DBus.Service == "" {
		c.DBus.Service = d.DBus.Service
	}
	if c.DBus.Path == "" {
		c.DBus.Path = d.DBus.Path
	}
	if c.DBus.Interface == "" {
		c.DBus.Interface = d.DBus.Interface
	}
}
