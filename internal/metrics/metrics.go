package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds prometheus.Histogram

	// LLM metrics
	LLMRequestsTotal   *prometheus.CounterVec
	LLMDurationSeconds *prometheus.HistogramVec
	LLMTokensTotal     *prometheus.CounterVec

	// Context builder metrics
	ContextBuildDurationSeconds prometheus.Histogram
	ContextProgramsRanked       prometheus.Histogram

	// Transcript metrics
	TranscriptUploadsTotal *prometheus.CounterVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_chat_requests_total",
				Help: "Total number of chat requests by status",
			},
			[]string{"status"}, // status: success, error, invalid
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "advisor_chat_duration_seconds",
				Help:    "End-to-end chat request duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
			},
		),

		LLMRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_llm_requests_total",
				Help: "Total number of LLM completion calls by provider and status",
			},
			[]string{"provider", "status"},
		),

		LLMDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "advisor_llm_duration_seconds",
				Help:    "LLM completion call duration in seconds by provider",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
			},
			[]string{"provider"},
		),

		LLMTokensTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_llm_tokens_total",
				Help: "Total LLM tokens consumed by provider and direction",
			},
			[]string{"provider", "direction"}, // direction: input, output
		),

		ContextBuildDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "advisor_context_build_duration_seconds",
				Help:    "Catalog context assembly duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		ContextProgramsRanked: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "advisor_context_programs_ranked",
				Help:    "Number of programs ranked into the context per request",
				Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8},
			},
		),

		TranscriptUploadsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_transcript_uploads_total",
				Help: "Total transcript uploads by format and status",
			},
			[]string{"format", "status"}, // format: txt, csv, pdf
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_http_errors_total",
				Help: "Total HTTP error responses by endpoint and code",
			},
			[]string{"endpoint", "code"},
		),
	}
}
