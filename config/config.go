package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string // sqlite file path

	// Redis configuration (optional; disables rate limiting when absent)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Auth configuration. BarPassword may be plaintext or a bcrypt hash.
	JWTSecret   string
	BarPassword string

	// S3 upload configuration
	S3Bucket  string
	AWSRegion string
}

// LoadConfig builds a Config from environment variables. Secrets
// (passwords, JWT secret) may instead come from files under SECRETS_DIR,
// which takes precedence when present.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBDriver:  getEnv("DB_DRIVER", "postgres"),
		DBHost:    getEnv("DB_HOST", "localhost"),
		DBPort:    getEnv("DB_PORT", "5432"),
		DBUser:    getEnv("DB_USER", "homebar"),
		DBName:    getEnv("DB_NAME", "homebar"),
		DBSSLMode: getEnv("DB_SSL_MODE", "disable"),
		DBPath:    getEnv("DB_PATH", "homebar.db"),

		RedisHost: os.Getenv("REDIS_HOST"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisURL:  os.Getenv("REDIS_URL"),

		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),
		AWSRegion: getEnv("AWS_REGION", "us-west-2"),
	}

	cfg.DBPassword = getSecret("db_password", "DB_PASSWORD")
	cfg.RedisPassword = getSecret("redis_password", "REDIS_PASSWORD")
	cfg.JWTSecret = getSecret("jwt_secret", "JWT_SECRET")
	cfg.BarPassword = getSecret("bar_password", "BAR_PASSWORD")

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.BarPassword == "" {
		return fmt.Errorf("BAR_PASSWORD is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getSecret prefers a Docker-style secret file over the environment.
func getSecret(secretName, envKey string) string {
	if v := readSecret(secretName); v != "" {
		return v
	}
	return os.Getenv(envKey)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
