package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	YouTubeAPIKey   string
	YouTubeEndpoint string
	RequestTimeout  time.Duration
	UpstreamTimeout time.Duration
	InFlightTTL     time.Duration
	RedisURL        string
	DatabaseURL     string
	DBPoolSize      int
	LogLevel        string
	LogFormat       string
	TrustProxy      bool
}

// Load configuration from env, after applying an optional .env file
// (variables already set in the environment win).
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	cfg := &Config{
		Port:            getEnvInt("PORT", 8080),
		YouTubeAPIKey:   getEnv("YOUTUBE_API_KEY", ""),
		YouTubeEndpoint: getEnv("YOUTUBE_ENDPOINT", ""),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		InFlightTTL:     getEnvDuration("INFLIGHT_TTL", 30*time.Second),
		RedisURL:        getEnv("REDIS_URL", ""),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DBPoolSize:      getEnvInt("DB_POOL_SIZE", 5),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		TrustProxy:      getEnvBool("TRUST_PROXY", false),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ExternalMode reports whether live video search is configured.
func (c *Config) ExternalMode() bool {
	return c.YouTubeAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
