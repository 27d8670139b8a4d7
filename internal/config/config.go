// Package config provides configuration loading and validation for the
// server and CLI. Values come from defaults, an optional config file, and the
// environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonathan/impact-search/internal/llm"
)

// Defaults
const (
	DefaultPort          = 8080
	DefaultModelTier     = "standard"
	DefaultMaxAgentSteps = 5
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"

	// configName is searched for in the working directory when no path is given
	configName = "impact-search"
)

// Config is the resolved application configuration.
type Config struct {
	Port          int    `mapstructure:"port"`
	DatabaseURL   string `mapstructure:"database_url"`   // PostgreSQL connection URL; empty disables profile search
	GeminiAPIKey  string `mapstructure:"gemini_api_key"` // empty disables the AI interpreter
	ModelTier     string `mapstructure:"model_tier"`
	Model         string `mapstructure:"model"` // overrides the model chosen for ModelTier
	MaxAgentSteps int    `mapstructure:"max_agent_steps"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`

	RateLimit RateLimit `mapstructure:"rate_limit"`
}

// RateLimit configures the HTTP rate limiter
type RateLimit struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit"`
	DefaultWindow   time.Duration `mapstructure:"default_window"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	SearchLimit     int           `mapstructure:"search_limit"`  // requests per SearchWindow on POST /api/search
	SearchWindow    time.Duration `mapstructure:"search_window"` // window for SearchLimit
	SearchBurst     int           `mapstructure:"search_burst"`
	Whitelist       string        `mapstructure:"whitelist"` // comma-separated IPs
	Blacklist       string        `mapstructure:"blacklist"` // comma-separated IPs
}

// envBindings maps config keys to the environment variables that set them
var envBindings = map[string]string{
	"port":                        "PORT",
	"database_url":                "DATABASE_URL",
	"gemini_api_key":              "GEMINI_API_KEY",
	"model_tier":                  "IMPACT_SEARCH_MODEL_TIER",
	"model":                       "IMPACT_SEARCH_MODEL",
	"max_agent_steps":             "IMPACT_SEARCH_MAX_AGENT_STEPS",
	"log_level":                   "LOG_LEVEL",
	"log_format":                  "LOG_FORMAT",
	"rate_limit.enabled":          "RATE_LIMIT_ENABLED",
	"rate_limit.default_limit":    "RATE_LIMIT_DEFAULT_LIMIT",
	"rate_limit.default_window":   "RATE_LIMIT_DEFAULT_WINDOW",
	"rate_limit.cleanup_interval": "RATE_LIMIT_CLEANUP_INTERVAL",
	"rate_limit.search_limit":     "RATE_LIMIT_SEARCH_LIMIT",
	"rate_limit.search_window":    "RATE_LIMIT_SEARCH_WINDOW",
	"rate_limit.search_burst":     "RATE_LIMIT_SEARCH_BURST",
	"rate_limit.whitelist":        "RATE_LIMIT_WHITELIST",
	"rate_limit.blacklist":        "RATE_LIMIT_BLACKLIST",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("database_url", "")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("model_tier", DefaultModelTier)
	v.SetDefault("model", "")
	v.SetDefault("max_agent_steps", DefaultMaxAgentSteps)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 1000)
	v.SetDefault("rate_limit.default_window", time.Minute)
	v.SetDefault("rate_limit.cleanup_interval", 5*time.Minute)
	v.SetDefault("rate_limit.search_limit", 60)
	v.SetDefault("rate_limit.search_window", time.Minute)
	v.SetDefault("rate_limit.search_burst", 10)
	v.SetDefault("rate_limit.whitelist", "")
	v.SetDefault("rate_limit.blacklist", "")
}

// Load resolves configuration. When path is empty, impact-search.{yaml,json,toml}
// in the working directory is used if present; a missing file is not an error.
// An explicit path that cannot be read is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ModelTier = strings.ToLower(strings.TrimSpace(cfg.ModelTier))
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.GeminiAPIKey = strings.TrimSpace(cfg.GeminiAPIKey)

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.MaxAgentSteps < 1 || c.MaxAgentSteps > 10 {
		return fmt.Errorf("config error: 'max_agent_steps' must be between 1 and 10, got %d", c.MaxAgentSteps)
	}
	if _, err := llm.ParseTier(c.ModelTier); err != nil {
		return fmt.Errorf("config error: 'model_tier': %w", err)
	}

	rl := c.RateLimit
	if rl.DefaultLimit < 0 || rl.SearchLimit < 0 || rl.SearchBurst < 0 {
		return fmt.Errorf("config error: rate limits must be non-negative")
	}
	if rl.Enabled && (rl.DefaultWindow <= 0 || rl.SearchWindow <= 0) {
		return fmt.Errorf("config error: rate limit windows must be positive")
	}

	return nil
}

// LLMEnabled reports whether the AI interpreter can be constructed
func (c *Config) LLMEnabled() bool {
	return c.GeminiAPIKey != ""
}

// DatabaseEnabled reports whether a profile store is configured
func (c *Config) DatabaseEnabled() bool {
	return c.DatabaseURL != ""
}
