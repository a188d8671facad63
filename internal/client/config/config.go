// Package config loads the agent console configuration via viper from
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the console settings.
type Config struct {
	BaseURL     string // API base, e.g. http://localhost:8080/api
	SessionFile string // durable session state path
	LogLevel    string // zerolog level name
}

// Load reads configuration. Environment variables use the SOUNDBOX_ prefix
// (SOUNDBOX_BASE_URL, ...); an optional soundbox.yaml next to the binary or
// in the user config dir overrides nothing set in the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("base_url", "http://localhost:8080/api")
	v.SetDefault("session_file", defaultSessionFile())
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("soundbox")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("soundbox")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "soundbox"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Config{
		BaseURL:     v.GetString("base_url"),
		SessionFile: v.GetString("session_file"),
		LogLevel:    v.GetString("log_level"),
	}, nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".soundbox-session.json"
	}
	return filepath.Join(dir, "soundbox", "session.json")
}
