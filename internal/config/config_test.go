package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/aKrishnan0817/uchicago-ai-advisor/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, DefaultOpenAIModel, cfg.OpenAIModel)
	assert.Equal(t, 8, cfg.MaxContextPrograms)
	assert.Equal(t, "http://collegecatalog.uchicago.edu", cfg.CatalogBaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.ScraperDelay)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvLLMProvider, ProviderGemini)
	t.Setenv(EnvMaxContextPrograms, "3")
	t.Setenv(EnvScraperDelay, "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, 3, cfg.MaxContextPrograms)
	assert.Equal(t, 2*time.Second, cfg.ScraperDelay)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv(EnvMaxContextPrograms, "not-a-number")
	t.Setenv(EnvScraperTimeout, "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.MaxContextPrograms)
	assert.Equal(t, 30*time.Second, cfg.ScraperTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown provider", func(c *Config) { c.LLMProvider = "claude" }, "unknown LLM provider"},
		{"zero context programs", func(c *Config) { c.MaxContextPrograms = 0 }, "max context programs"},
		{"negative retries", func(c *Config) { c.ScraperMaxRetries = -1 }, "max retries"},
		{"zero upload limit", func(c *Config) { c.MaxUploadBytes = 0 }, "upload bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Field)
		})
	}
}

func TestHasLLMKey(t *testing.T) {
	cfg := &Config{LLMProvider: ProviderOpenAI}
	assert.False(t, cfg.HasLLMKey())
	cfg.OpenAIAPIKey = "sk-test"
	assert.True(t, cfg.HasLLMKey())

	cfg = &Config{LLMProvider: ProviderGemini, OpenAIAPIKey: "sk-test"}
	assert.False(t, cfg.HasLLMKey())
	cfg.GeminiAPIKey = "g-test"
	assert.True(t, cfg.HasLLMKey())
}

func TestDataPaths(t *testing.T) {
	cfg := &Config{DataDir: "data"}
	assert.Equal(t, "data/programs.json", cfg.ProgramsPath())
	assert.Equal(t, "data/courses.json", cfg.CoursesPath())
}
