package utils

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadConfig loads <path>/.env into the process environment (existing variables win)
// and prepares viper to resolve keys like "app_port" against APP_PORT.
func LoadConfig(path string) {
	envFile := filepath.Join(path, ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("[CONFIG] Failed to load %s: %v", envFile, err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// ReadConfigFile merges an optional config file (yaml, json, toml...) into viper.
func ReadConfigFile(file string) error {
	if file == "" {
		return nil
	}
	viper.SetConfigFile(file)
	return viper.ReadInConfig()
}
