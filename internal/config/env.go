// Package config defines environment variable keys for configuration.
package config

const (
	// Server
	EnvPort            = "ADVISOR_PORT"
	EnvLogLevel        = "ADVISOR_LOG_LEVEL"
	EnvShutdownTimeout = "ADVISOR_SHUTDOWN_TIMEOUT"

	// Data
	EnvDataDir = "ADVISOR_DATA_DIR"

	// LLM
	EnvLLMProvider   = "ADVISOR_LLM_PROVIDER"
	EnvOpenAIAPIKey  = "OPENAI_API_KEY"
	EnvOpenAIBaseURL = "ADVISOR_OPENAI_BASE_URL"
	EnvOpenAIModel   = "ADVISOR_OPENAI_MODEL"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvGeminiModel   = "ADVISOR_GEMINI_MODEL"

	// Context building
	EnvMaxContextPrograms = "ADVISOR_MAX_CONTEXT_PROGRAMS"

	// Scraper
	EnvCatalogBaseURL    = "ADVISOR_CATALOG_BASE_URL"
	EnvScraperTimeout    = "ADVISOR_SCRAPER_TIMEOUT"
	EnvScraperMaxRetries = "ADVISOR_SCRAPER_MAX_RETRIES"
	EnvScraperDelay      = "ADVISOR_SCRAPER_DELAY"

	// Uploads
	EnvMaxUploadBytes = "ADVISOR_MAX_UPLOAD_BYTES"

	// Metrics
	EnvMetricsUsername = "ADVISOR_METRICS_USERNAME"
	EnvMetricsPassword = "ADVISOR_METRICS_PASSWORD"

	// Better Stack logging
	EnvBetterStackToken    = "ADVISOR_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "ADVISOR_BETTERSTACK_ENDPOINT"

	// Sentry error tracking
	EnvSentryToken       = "ADVISOR_SENTRY_TOKEN"
	EnvSentryHost        = "ADVISOR_SENTRY_HOST"
	EnvSentryEnvironment = "ADVISOR_SENTRY_ENVIRONMENT"
	EnvSentrySampleRate  = "ADVISOR_SENTRY_SAMPLE_RATE"
)
