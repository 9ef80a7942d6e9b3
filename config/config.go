package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// External provider configuration
	LLMAPIKey         string
	LLMAPIURL         string
	SpoonacularAPIKey string
	SpoonacularAPIURL string
	ImageAPIKey       string
	ImageAPIURL       string

	// Image storage (optional; generated images stay on the provider URL
	// when no bucket is configured)
	S3Bucket  string
	AWSRegion string

	// Suggestion pipeline tuning
	ProviderTimeout time.Duration
	CacheTTL        time.Duration
	ThrottleDelay   time.Duration
}

// Load creates a Config from environment variables. Required values that
// are absent make Load fail; the caller is expected to exit.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:    getEnv("DB_HOST", "localhost"),
		DBPort:    getEnv("DB_PORT", "5432"),
		DBUser:    getEnv("DB_USER", "postgres"),
		DBName:    getEnv("DB_NAME", "pantrychef"),
		DBSSLMode: getEnv("DB_SSL_MODE", "disable"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisURL:  os.Getenv("REDIS_URL"),

		LLMAPIURL:         getEnv("LLM_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		SpoonacularAPIURL: getEnv("SPOONACULAR_API_URL", "https://api.spoonacular.com"),
		ImageAPIURL:       getEnv("IMAGE_API_URL", "https://api.openai.com/v1/images/generations"),

		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),
		AWSRegion: os.Getenv("AWS_REGION"),

		ProviderTimeout: getDuration("PROVIDER_TIMEOUT", 15*time.Second),
		CacheTTL:        getDuration("SUGGESTION_CACHE_TTL", time.Hour),
		ThrottleDelay:   getDuration("LLM_THROTTLE_DELAY", time.Second),
	}

	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}

	var err error
	if cfg.JWTSecret, err = requireSecret("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.LLMAPIKey, err = requireSecret("LLM_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.SpoonacularAPIKey, err = requireSecret("SPOONACULAR_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.ImageAPIKey, err = requireSecret("IMAGE_API_KEY"); err != nil {
		return nil, err
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD environment variable is required")
	}

	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// requireSecret reads NAME from the environment, falling back to the file
// named by NAME_FILE. Missing both is a startup error.
func requireSecret(name string) (string, error) {
	if v := os.Getenv(name); v != "" {
		return v, nil
	}

	if path := os.Getenv(name + "_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s_FILE: %w", name, err)
		}
		v := strings.TrimSpace(string(data))
		if v == "" {
			return "", fmt.Errorf("%s_FILE is empty", name)
		}
		return v, nil
	}

	return "", fmt.Errorf("%s or %s_FILE must be set", name, name)
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getDuration(name string, fallback time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
