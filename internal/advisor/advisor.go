package advisor

import (
	"context"
	"strings"
	"time"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/catalog"
	apperrors "github.com/aKrishnan0817/uchicago-ai-advisor/internal/errors"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/llm"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/logger"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/metrics"
)

// Request carries one chat turn plus the client-held conversation state.
type Request struct {
	Message    string   `json:"message"`
	History    []Turn   `json:"history"`
	Completed  []string `json:"completed_courses"`
	InProgress []string `json:"in_progress_courses"`
}

// Response is the assistant's reply plus per-call accounting.
type Response struct {
	Reply          string `json:"reply"`
	ProgramsRanked int    `json:"-"`
	InputTokens    int64  `json:"-"`
	OutputTokens   int64  `json:"-"`
}

var llmWrap = apperrors.NewWrapper("advisor", "chat")

// Advisor orchestrates one chat turn: build catalog context, assemble
// the prompt, make a single LLM call, and return the reply. It holds no
// per-conversation state.
type Advisor struct {
	store   *catalog.Store
	builder *Builder
	client  llm.ChatClient
	log     *logger.Logger
	metrics *metrics.Metrics
}

// New creates an Advisor over an immutable store, a configured LLM
// client, and shared observability plumbing.
func New(store *catalog.Store, builder *Builder, client llm.ChatClient, log *logger.Logger, m *metrics.Metrics) *Advisor {
	return &Advisor{
		store:   store,
		builder: builder,
		client:  client,
		log:     log.WithModule("advisor"),
		metrics: m,
	}
}

// Chat handles one turn. A whitespace-only message is rejected before
// any LLM call. The LLM is called exactly once; errors propagate to the
// caller without retries.
func (a *Advisor) Chat(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.ErrEmptyMessage
	}

	contextStart := time.Now()
	catalogContext, ranked := a.builder.Build(req.Message, req.Completed, req.InProgress, req.History)
	if a.metrics != nil {
		a.metrics.ContextBuildDurationSeconds.Observe(time.Since(contextStart).Seconds())
		a.metrics.ContextProgramsRanked.Observe(float64(ranked))
	}

	messages := a.assembleMessages(catalogContext, req)

	llmStart := time.Now()
	result, err := a.client.Complete(ctx, messages)
	elapsed := time.Since(llmStart)

	provider := a.client.Provider()
	if err != nil {
		if a.metrics != nil {
			a.metrics.LLMRequestsTotal.WithLabelValues(provider, "error").Inc()
		}
		a.log.WithError(err).Errorf("LLM request failed after %s", elapsed.Round(time.Millisecond))
		return nil, llmWrap.Wrapf(err, "The %s backend could not generate a reply. Please try again.", provider)
	}

	if a.metrics != nil {
		a.metrics.LLMRequestsTotal.WithLabelValues(provider, "success").Inc()
		a.metrics.LLMDurationSeconds.WithLabelValues(provider).Observe(elapsed.Seconds())
		a.metrics.LLMTokensTotal.WithLabelValues(provider, "input").Add(float64(result.InputTokens))
		a.metrics.LLMTokensTotal.WithLabelValues(provider, "output").Add(float64(result.OutputTokens))
	}

	a.log.WithFields(map[string]any{
		"provider":        provider,
		"programs_ranked": ranked,
		"input_tokens":    result.InputTokens,
		"output_tokens":   result.OutputTokens,
		"duration_ms":     elapsed.Milliseconds(),
	}).Infof("chat turn completed")

	return &Response{
		Reply:          result.Text,
		ProgramsRanked: ranked,
		InputTokens:    result.InputTokens,
		OutputTokens:   result.OutputTokens,
	}, nil
}

// assembleMessages builds the LLM message list: system content first,
// then the client-supplied history, then the current message. History
// entries with unknown roles are dropped.
func (a *Advisor) assembleMessages(catalogContext string, req *Request) []llm.Message {
	system := buildSystemContent(catalogContext, a.store.Empty(), req.Completed, req.InProgress)

	messages := make([]llm.Message, 0, len(req.History)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: system})
	for _, turn := range req.History {
		switch turn.Role {
		case "user":
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: turn.Content})
		case "assistant":
			messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: turn.Content})
		}
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: req.Message})
	return messages
}
