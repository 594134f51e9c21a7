package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.ChatRequestsTotal.WithLabelValues("success").Inc()
	m.LLMRequestsTotal.WithLabelValues("openai", "success").Inc()
	m.LLMTokensTotal.WithLabelValues("openai", "input").Add(120)
	m.TranscriptUploadsTotal.WithLabelValues("pdf", "success").Inc()
	m.HTTPErrorsTotal.WithLabelValues("/chat", "400").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ChatRequestsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(120), testutil.ToFloat64(m.LLMTokensTotal.WithLabelValues("openai", "input")))

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["advisor_chat_requests_total"])
	assert.True(t, names["advisor_llm_requests_total"])
	assert.True(t, names["advisor_transcript_uploads_total"])
	assert.True(t, names["advisor_http_errors_total"])
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	New(registry)
	assert.Panics(t, func() { New(registry) })
}
