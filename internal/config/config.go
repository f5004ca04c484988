// Package config provides configuration loading and validation for the
// scan service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds the service configuration. Values come from an optional
// JSON file, overridden by environment variables.
type Config struct {
	Port        int    `json:"port,omitempty" validate:"min=1,max=65535"`
	DatabaseURL string `json:"database_url,omitempty"` // empty disables persistence and the scan cache

	// LLM providers; either may be empty. With both empty, judgment and
	// persona copy fall back to hardcoded defaults.
	GroqAPIKey   string `json:"groq_api_key,omitempty"`
	GoogleAPIKey string `json:"google_api_key,omitempty"`

	// Dashboard auth. Empty secret disables the dashboard routes.
	JWTSecret          string `json:"jwt_secret,omitempty"`
	JWTExpirationHours int    `json:"jwt_expiration_hours,omitempty" validate:"omitempty,min=1"`

	Verbose bool `json:"verbose,omitempty"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Port:               8000,
		JWTExpirationHours: 24,
	}
}

// Load builds the configuration: defaults, then the JSON file at path
// (if non-empty), then environment variables. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from the environment.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		c.GroqAPIKey = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		c.GoogleAPIKey = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			c.JWTExpirationHours = hours
		}
	}
	if v := os.Getenv("VERBOSE"); v != "" {
		if verbose, err := strconv.ParseBool(v); err == nil {
			c.Verbose = verbose
		}
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
