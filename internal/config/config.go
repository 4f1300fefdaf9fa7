package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the API server's runtime settings.
type Config struct {
	Port            int
	GinMode         string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

const (
	defaultPort            = 3000
	defaultGinMode         = "release"
	defaultShutdownTimeout = 5 * time.Second
)

// Load reads the API configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            parseIntDefault("PORT", defaultPort),
		GinMode:         getenvDefault("GIN_MODE", defaultGinMode),
		LogLevel:        parseLevelDefault("LOG_LEVEL", slog.LevelInfo),
		ShutdownTimeout: parseDurationDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func parseLevelDefault(key string, fallback slog.Level) slog.Level {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(val))); err != nil {
		return fallback
	}
	return level
}
