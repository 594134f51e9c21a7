package llm

import (
	"context"
	"fmt"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/config"
)

// NewFromConfig creates the ChatClient selected by configuration.
// Exactly one provider is active per process. When the selected provider
// has no API key, a disabled client is returned so the server can start
// and report the problem on the first chat request instead of at boot.
func NewFromConfig(ctx context.Context, cfg *config.Config) (ChatClient, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return &disabledClient{provider: cfg.LLMProvider}, nil
		}
		return newOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return &disabledClient{provider: cfg.LLMProvider}, nil
		}
		return newGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}

// disabledClient stands in when no API key is configured.
type disabledClient struct {
	provider string
}

func (c *disabledClient) Complete(ctx context.Context, messages []Message) (*Result, error) {
	return nil, fmt.Errorf("no API key configured for provider %s", c.provider)
}

func (c *disabledClient) Provider() string {
	return c.provider
}

func (c *disabledClient) Close() error {
	return nil
}
