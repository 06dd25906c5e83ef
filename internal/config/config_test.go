package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, LanguageEnglish, cfg.Language)
	assert.Equal(t, PreferHebrew, cfg.DatePreference)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Zero(t, cfg.CacheSize)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)

	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LANGUAGE", "he")
	t.Setenv("DATE_PREFERENCE", "gregorian")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("CACHE_SIZE", "512")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, LanguageHebrew, cfg.Language)
	assert.Equal(t, PreferGregorian, cfg.DatePreference)
	assert.Equal(t, 512, cfg.CacheSize)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("LANGUAGE", "fr")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LANGUAGE")
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Env:            EnvDevelopment,
		LogLevel:       "info",
		LogFormat:      "text",
		Language:       LanguageHebrew,
		DatePreference: PreferHebrew,
		Timezone:       "Local",
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid development config", func(c *Config) {}, false},
		{"valid production config", func(c *Config) {
			c.Env = EnvProduction
			c.LogFormat = "json"
			c.Timezone = "Asia/Jerusalem"
			c.CacheSize = 100
		}, false},
		{"empty timezone means local", func(c *Config) { c.Timezone = "" }, false},
		{"invalid environment", func(c *Config) { c.Env = "invalid" }, true},
		{"invalid log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"invalid log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"invalid language", func(c *Config) { c.Language = "de" }, true},
		{"invalid date preference", func(c *Config) { c.DatePreference = "julian" }, true},
		{"unknown timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, true},
		{"negative cache size", func(c *Config) { c.CacheSize = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_JoinsErrors(t *testing.T) {
	cfg := Config{Env: "x", LogLevel: "x", LogFormat: "x", Language: "x", DatePreference: "x"}
	err := cfg.Validate()
	require.Error(t, err)

	for _, key := range []string{"ENV", "LOG_LEVEL", "LOG_FORMAT", "LANGUAGE", "DATE_PREFERENCE"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	assert.True(t, cfg.IsDevelopment())

	cfg.Env = EnvProduction
	assert.False(t, cfg.IsDevelopment())
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{Env: EnvProduction}
	assert.True(t, cfg.IsProduction())

	cfg.Env = EnvDevelopment
	assert.False(t, cfg.IsProduction())
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"ENV", "LOG_LEVEL", "LOG_FORMAT",
		"LANGUAGE", "DATE_PREFERENCE", "TIMEZONE", "CACHE_SIZE",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}
