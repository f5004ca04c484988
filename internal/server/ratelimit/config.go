package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	Limit           int           // requests per Window
	Window          time.Duration // refill window
	Burst           int           // bucket capacity
	CleanupInterval time.Duration
	Whitelist       map[string]bool // client IDs exempt from limiting
}

// DefaultConfig returns the production defaults: 5 scans per hour per
// IP, loopback exempt.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Limit:           5,
		Window:          time.Hour,
		Burst:           5,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       map[string]bool{"127.0.0.1": true, "::1": true},
	}
}

// LoadConfig reads limiter settings from RATE_LIMIT_* environment
// variables, falling back to DefaultConfig values.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	cfg.Limit = getEnvInt("RATE_LIMIT_LIMIT", cfg.Limit)
	cfg.Window = getEnvDuration("RATE_LIMIT_WINDOW", cfg.Window)
	cfg.Burst = getEnvInt("RATE_LIMIT_BURST", cfg.Limit)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)

	if list := os.Getenv("RATE_LIMIT_WHITELIST"); list != "" {
		cfg.Whitelist = parseIPList(list)
	}

	return cfg
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
