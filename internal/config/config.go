// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// the server, the LLM backend, the catalog scraper, and observability sinks.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	apperrors "github.com/aKrishnan0817/uchicago-ai-advisor/internal/errors"
)

var lookupEnv = os.LookupEnv

// LLM provider identifiers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default model names per provider.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// HTTP server timeouts. Chat requests block on one outbound LLM call, so
// the write timeout must cover the slowest expected completion.
const (
	HTTPReadTimeout  = 15 * time.Second
	HTTPWriteTimeout = 120 * time.Second
	HTTPIdleTimeout  = 90 * time.Second
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir string // Directory holding programs.json and courses.json

	// LLM Configuration
	LLMProvider   string // "openai" or "gemini"
	OpenAIAPIKey  string
	OpenAIBaseURL string // Optional custom endpoint for OpenAI-compatible backends
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string

	// Context Building
	MaxContextPrograms int // Maximum ranked programs injected per request

	// Scraper Configuration
	CatalogBaseURL    string
	ScraperTimeout    time.Duration
	ScraperMaxRetries int
	ScraperDelay      time.Duration // Polite delay between page fetches

	// Uploads
	MaxUploadBytes int64

	// Metrics Authentication
	MetricsUsername string
	MetricsPassword string // Empty disables basic auth on /metrics

	// Better Stack logging
	BetterStackToken    string
	BetterStackEndpoint string

	// Sentry error tracking
	SentryToken       string
	SentryHost        string
	SentryEnvironment string
	SentrySampleRate  float64
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first, then reads from env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv(EnvPort, "8080"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDuration(EnvShutdownTimeout, 10*time.Second),

		DataDir: getEnv(EnvDataDir, "data"),

		LLMProvider:   getEnv(EnvLLMProvider, ProviderOpenAI),
		OpenAIAPIKey:  getEnv(EnvOpenAIAPIKey, ""),
		OpenAIBaseURL: getEnv(EnvOpenAIBaseURL, ""),
		OpenAIModel:   getEnv(EnvOpenAIModel, DefaultOpenAIModel),
		GeminiAPIKey:  getEnv(EnvGeminiAPIKey, ""),
		GeminiModel:   getEnv(EnvGeminiModel, DefaultGeminiModel),

		MaxContextPrograms: getInt(EnvMaxContextPrograms, 8),

		CatalogBaseURL:    getEnv(EnvCatalogBaseURL, "http://collegecatalog.uchicago.edu"),
		ScraperTimeout:    getDuration(EnvScraperTimeout, 30*time.Second),
		ScraperMaxRetries: getInt(EnvScraperMaxRetries, 3),
		ScraperDelay:      getDuration(EnvScraperDelay, 1500*time.Millisecond),

		MaxUploadBytes: getInt64(EnvMaxUploadBytes, 10<<20),

		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),

		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),

		SentryToken:       getEnv(EnvSentryToken, ""),
		SentryHost:        getEnv(EnvSentryHost, "errors.betterstack.com"),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentrySampleRate:  getFloat(EnvSentrySampleRate, 1.0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return apperrors.NewValidationError("llm_provider",
			fmt.Sprintf("unknown LLM provider %q (expected %q or %q)",
				c.LLMProvider, ProviderOpenAI, ProviderGemini))
	}

	if c.MaxContextPrograms < 1 {
		return apperrors.NewValidationError("max_context_programs",
			fmt.Sprintf("max context programs must be at least 1, got %d", c.MaxContextPrograms))
	}

	if c.ScraperMaxRetries < 0 {
		return apperrors.NewValidationError("scraper_max_retries",
			fmt.Sprintf("scraper max retries must not be negative, got %d", c.ScraperMaxRetries))
	}

	if c.MaxUploadBytes <= 0 {
		return apperrors.NewValidationError("max_upload_bytes",
			fmt.Sprintf("max upload bytes must be positive, got %d", c.MaxUploadBytes))
	}

	return nil
}

// HasLLMKey reports whether the configured provider has an API key.
func (c *Config) HasLLMKey() bool {
	switch c.LLMProvider {
	case ProviderGemini:
		return c.GeminiAPIKey != ""
	default:
		return c.OpenAIAPIKey != ""
	}
}

// ProgramsPath returns the path to the scraped programs JSON document.
func (c *Config) ProgramsPath() string {
	return filepath.Join(c.DataDir, "programs.json")
}

// CoursesPath returns the path to the scraped courses JSON document.
func (c *Config) CoursesPath() string {
	return filepath.Join(c.DataDir, "courses.json")
}

func getEnv(key, fallback string) string {
	if v, ok := lookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := lookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if v, ok := lookupEnv(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, ok := lookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := lookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
