package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default configuration values applied when neither the environment nor a
// config file provides a setting.
const (
	defaultServerPort = 8080
	defaultLogLevel   = "info"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file; a .env file is loaded first
// when present (development convenience).
//
// Environment variables use the DIRECTORY_ prefix with underscores for
// nesting, e.g. DIRECTORY_DATABASE_URL, DIRECTORY_SERVER_PORT,
// DIRECTORY_SERVER_LOG_LEVEL.
//
// Returns a populated Config struct or an error if loading or validation fails.
func Load() (*Config, error) {
	// Load .env into the process environment when one exists; real
	// environment variables still win inside viper.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	v := viper.New()

	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("server.log_level", defaultLogLevel)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DIRECTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys to Unmarshal;
	// keys without defaults must be bound explicitly.
	if err := v.BindEnv("database.url"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}

	// The config file is optional; only a malformed one is an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
