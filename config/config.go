// Package config loads the application configuration from the environment
// and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SirARLOTech/anti-link/model"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Load reads .env, environment variables and config.yaml (if present) and
// returns the resolved configuration. The bot token is the only required
// value.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env file not found, relying on environment variables")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./data")

	v.SetDefault("data_dir", "data")
	v.SetDefault("database", "moderation.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("restore_retry_backoff", "30s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable not set")
	}

	dataDir := v.GetString("data_dir")
	cfg := &model.Config{
		BotToken:            token,
		AppID:               os.Getenv("APP_ID"),
		DataDir:             dataDir,
		DatabasePath:        filepath.Join(dataDir, v.GetString("database")),
		LogLevel:            v.GetString("log_level"),
		RestoreRetryBackoff: v.GetDuration("restore_retry_backoff"),
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}
