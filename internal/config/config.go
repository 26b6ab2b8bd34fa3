package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// weakSecretKeys are default or guessable values rejected outright.
var weakSecretKeys = []string{
	"your-secret-key-change-in-production",
	"your-secret-key-change-this-in-production-use-openssl-rand-hex-32",
	"secret",
	"change-me",
	"secretkey",
	"12345",
}

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port           string
	AllowedOrigins []string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Auth configuration
	SecretKey          string
	AccessTokenMinutes int
}

// Load loads configuration from environment variables, reading a local .env
// file first when one exists.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		AllowedOrigins:     splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		DBType:             getEnv("DB_TYPE", "postgres"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBDatabase:         getEnv("DB_DATABASE", ""),
		DBUser:             getEnv("DB_USER", ""),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:  getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		SecretKey:          getEnv("SECRET_KEY", ""),
		AccessTokenMinutes: getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBType != "sqlite" && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	if err := validateSecretKey(cfg.SecretKey); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateSecretKey rejects missing, short, or well-known default keys
func validateSecretKey(key string) error {
	if key == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	if len(key) < 32 {
		return fmt.Errorf("SECRET_KEY must be at least 32 characters")
	}
	for _, weak := range weakSecretKeys {
		if key == weak {
			return fmt.Errorf("SECRET_KEY must not be a default or weak value")
		}
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// splitList splits a comma-separated value, trimming whitespace
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
