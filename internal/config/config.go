package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	App  AppConfig
	Auth AuthConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        string
	Version     string
}

type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
	OperatorKey     string
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookstore Catalogue"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", "change-this-secret"),
			TokenExpiration: getEnvDuration("JWT_EXPIRATION", 24*time.Hour),
			OperatorKey:     getEnv("STOCK_OPERATOR_KEY", "stockroom"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}
	if c.App.Environment == "production" {
		if c.Auth.JWTSecret == "change-this-secret" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Auth.OperatorKey == "stockroom" {
			return fmt.Errorf("STOCK_OPERATOR_KEY must be set in production")
		}
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
