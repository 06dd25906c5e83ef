// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	Env string // development, staging, production

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// Presentation
	Language       string // en, he
	DatePreference string // hebrew, gregorian
	Timezone       string // IANA zone name or "Local"

	// Liturgical cache; 0 means unbounded
	CacheSize int
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Presentation constants
const (
	LanguageEnglish = "en"
	LanguageHebrew  = "he"

	PreferHebrew    = "hebrew"
	PreferGregorian = "gregorian"
)

// Load reads configuration from environment variables.
// It first loads from a .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Env = getEnv("ENV", EnvDevelopment)

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	// Presentation
	cfg.Language = getEnv("LANGUAGE", LanguageEnglish)
	cfg.DatePreference = getEnv("DATE_PREFERENCE", PreferHebrew)
	cfg.Timezone = getEnv("TIMEZONE", "Local")

	cfg.CacheSize = getEnvInt("CACHE_SIZE", 0)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	switch c.Language {
	case LanguageEnglish, LanguageHebrew:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LANGUAGE must be one of: en, he; got %q", c.Language))
	}

	switch c.DatePreference {
	case PreferHebrew, PreferGregorian:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("DATE_PREFERENCE must be one of: hebrew, gregorian; got %q", c.DatePreference))
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}

	if c.CacheSize < 0 {
		errs = append(errs, errors.New("CACHE_SIZE must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Location resolves Timezone. An empty value or "Local" is the system zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
