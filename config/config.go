// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Password PasswordConfig
	Flash    FlashConfig
	Email    EmailConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
	LogLevel     slog.Level
}

// DatabaseConfig holds database configuration.
// Driver is either "sqlite" (URL is a file path or DSN) or "postgres".
type DatabaseConfig struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// PasswordConfig holds password hashing configuration.
type PasswordConfig struct {
	BcryptCost int
}

// FlashConfig holds settings for the transient flash-message cookie.
type FlashConfig struct {
	Secret       string
	CookieSecure bool
}

// EmailConfig holds email service configuration.
type EmailConfig struct {
	ResendAPIKey  string
	ResendBaseURL string
	FromName      string
	FromEmail     string
	AppBaseURL    string
	WorkerEnabled bool
	PollInterval  time.Duration
	BatchSize     int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
			LogLevel:     getEnvAsLogLevel("LOG_LEVEL", slog.LevelInfo),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite")),
			URL:             getEnv("DATABASE_URL", "users.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Password: PasswordConfig{
			BcryptCost: getEnvAsInt("BCRYPT_COST", 12),
		},
		Flash: FlashConfig{
			Secret:       getEnv("FLASH_SECRET", "change-me-in-production"),
			CookieSecure: getEnvAsBool("FLASH_COOKIE_SECURE", false),
		},
		Email: EmailConfig{
			ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
			ResendBaseURL: getEnv("RESEND_BASE_URL", ""),
			FromName:      getEnv("RESEND_FROM_NAME", "Account Gate"),
			FromEmail:     getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
			WorkerEnabled: getEnvAsBool("EMAIL_WORKER_ENABLED", false),
			PollInterval:  getEnvAsDuration("EMAIL_WORKER_POLL_INTERVAL", 5*time.Second),
			BatchSize:     getEnvAsInt("EMAIL_WORKER_BATCH_SIZE", 10),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsLogLevel(key string, defaultValue slog.Level) slog.Level {
	if value, exists := os.LookupEnv(key); exists {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
