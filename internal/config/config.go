package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// HTTP
	HTTPPort int `env:"HTTP_PORT" default:"8080"`

	// Database: a postgres DSN, or a sqlite file path for local use
	DatabaseURL string `env:"DATABASE_URL" default:"toolhub.db"`

	// Seeding
	SeedSampleData bool `env:"SEED_SAMPLE_DATA" default:"true"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"console"`

	// CORS
	CORSOrigins []string `env:"CORS_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional; system env vars still apply without it
	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.DatabaseURL, "DATABASE_URL", "toolhub.db"); err != nil {
		return nil, err
	}
	if err := loadEnvBool(&config.SeedSampleData, "SEED_SAMPLE_DATA", true); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "info"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogFormat, "LOG_FORMAT", "console"); err != nil {
		return nil, err
	}
	loadEnvStringSlice(&config.CORSOrigins, "CORS_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"})

	if config.HTTPPort < 1 || config.HTTPPort > 65535 {
		return nil, fmt.Errorf("HTTP_PORT out of range: %d", config.HTTPPort)
	}

	return config, nil
}

func loadEnvString(dst *string, key, def string) error {
	v := os.Getenv(key)
	if v == "" {
		v = def
	}
	*dst = v
	return nil
}

func loadEnvInt(dst *int, key string, def int) error {
	v := os.Getenv(key)
	if v == "" {
		*dst = def
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = parsed
	return nil
}

func loadEnvBool(dst *bool, key string, def bool) error {
	v := os.Getenv(key)
	if v == "" {
		*dst = def
		return nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = parsed
	return nil
}

func loadEnvStringSlice(dst *[]string, key string, def []string) {
	v := os.Getenv(key)
	if v == "" {
		*dst = def
		return
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	*dst = out
}
