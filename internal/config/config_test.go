package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every bound variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		if old, ok := os.LookupEnv(env); ok {
			require.NoError(t, os.Unsetenv(env))
			t.Cleanup(func() { _ = os.Setenv(env, old) })
		}
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultModelTier, cfg.ModelTier)
	assert.Equal(t, DefaultMaxAgentSteps, cfg.MaxAgentSteps)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.Model)
	assert.False(t, cfg.LLMEnabled())
	assert.False(t, cfg.DatabaseEnabled())

	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.SearchLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.SearchWindow)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.CleanupInterval)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
port: 9090
model_tier: Advanced
max_agent_steps: 3
log_format: console
rate_limit:
  search_limit: 5
  search_window: 30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "advanced", cfg.ModelTier)
	assert.Equal(t, 3, cfg.MaxAgentSteps)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 5, cfg.RateLimit.SearchLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.SearchWindow)
	assert.Equal(t, 10, cfg.RateLimit.SearchBurst, "unset nested keys keep defaults")
}

func TestLoad_JSONFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.json", `{"database_url": " postgres://localhost/impact ", "gemini_api_key": "k"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/impact", cfg.DatabaseURL)
	assert.True(t, cfg.DatabaseEnabled())
	assert.True(t, cfg.LLMEnabled())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "port: 9090\nmax_agent_steps: 3\n")
	t.Setenv("PORT", "7070")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("IMPACT_SEARCH_MAX_AGENT_STEPS", "8")
	t.Setenv("IMPACT_SEARCH_MODEL", " gemini-2.5-flash-001 ")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 8, cfg.MaxAgentSteps)
	assert.Equal(t, "gemini-2.5-flash-001", cfg.Model)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "10.0.0.1, 10.0.0.2", cfg.RateLimit.Whitelist)
}

func TestLoad_DiscoversFileInWorkingDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "impact-search.yaml"), []byte("port: 6060\n"), 0644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Port)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.json", "{ invalid json }"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:          8080,
			ModelTier:     "standard",
			MaxAgentSteps: 5,
			RateLimit: RateLimit{
				Enabled:       true,
				DefaultLimit:  10,
				DefaultWindow: time.Minute,
				SearchLimit:   5,
				SearchWindow:  time.Minute,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"steps zero", func(c *Config) { c.MaxAgentSteps = 0 }, true},
		{"steps eleven", func(c *Config) { c.MaxAgentSteps = 11 }, true},
		{"steps ten", func(c *Config) { c.MaxAgentSteps = 10 }, false},
		{"bad tier", func(c *Config) { c.ModelTier = "huge" }, true},
		{"negative limit", func(c *Config) { c.RateLimit.SearchLimit = -1 }, true},
		{"zero window", func(c *Config) { c.RateLimit.SearchWindow = 0 }, true},
		{"zero window when disabled", func(c *Config) {
			c.RateLimit.Enabled = false
			c.RateLimit.SearchWindow = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
