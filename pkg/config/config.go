// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, registry, and rate limit settings

package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Registry contains source registry configuration
	Registry RegistryConfig

	// RateLimit contains API rate limit configuration
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// HTTPTimeout is the timeout for upstream catalog requests in seconds
	HTTPTimeout int
}

// RegistryConfig holds source registry backend configuration
type RegistryConfig struct {
	// Type specifies the registry backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// RateLimitConfig holds API rate limit configuration
type RateLimitConfig struct {
	// Limit is the number of requests allowed per window
	Limit int

	// Window is the rate limit window
	Window time.Duration
}

// LoadFromEnv loads configuration from environment variables. A .env
// file in the working directory is applied first when present.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8000"),
			HTTPTimeout: getEnvAsIntOrDefault("HTTP_TIMEOUT", 30),
		},
		Registry: RegistryConfig{
			Type: getEnvOrDefault("REGISTRY_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "sources.db"),
			},
		},
		RateLimit: RateLimitConfig{
			Limit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			Window: time.Duration(getEnvAsIntOrDefault("RATE_WINDOW", 60)) * time.Second,
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.HTTPTimeout < 1 {
		return errors.New("HTTP timeout must be at least 1 second")
	}

	switch c.Registry.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("registry type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Registry.Type == "redis" && c.Registry.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis registry")
	}

	if c.Registry.Type == "sqlite" && c.Registry.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite registry")
	}

	return nil
}
