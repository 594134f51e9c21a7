package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/config"
)

func TestNewFromConfigUnsupportedProvider(t *testing.T) {
	cfg := &config.Config{LLMProvider: "anthropic"}

	client, err := NewFromConfig(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestNewFromConfigNoKeyReturnsDisabledClient(t *testing.T) {
	cfg := &config.Config{LLMProvider: config.ProviderOpenAI}

	client, err := NewFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, config.ProviderOpenAI, client.Provider())

	_, err = client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API key configured")
	assert.NoError(t, client.Close())
}

func TestNewOpenAIClientValidation(t *testing.T) {
	_, err := newOpenAIClient("", "gpt-4o-mini", "")
	require.Error(t, err)

	_, err = newOpenAIClient("sk-test", "", "")
	require.Error(t, err)

	client, err := newOpenAIClient("sk-test", "gpt-4o-mini", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", client.Provider())
	assert.NoError(t, client.Close())
}

func TestNewGeminiClientValidation(t *testing.T) {
	_, err := newGeminiClient(context.Background(), "", "gemini-2.5-flash")
	require.Error(t, err)

	_, err = newGeminiClient(context.Background(), "test-key", "")
	require.Error(t, err)
}

func TestToOpenAIMessages(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "be helpful"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
		{Role: RoleUser, Content: "what about CS?"},
	}

	out := toOpenAIMessages(messages)
	require.Len(t, out, 4)
	assert.NotNil(t, out[0].OfSystem)
	assert.NotNil(t, out[1].OfUser)
	assert.NotNil(t, out[2].OfAssistant)
	assert.NotNil(t, out[3].OfUser)
}

func TestToGeminiContents(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "be helpful"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	}

	system, contents := toGeminiContents(messages)
	assert.Equal(t, "be helpful", system)
	require.Len(t, contents, 2)
	assert.Equal(t, "user", string(contents[0].Role))
	assert.Equal(t, "model", string(contents[1].Role))
}

func TestToGeminiContentsNoSystem(t *testing.T) {
	system, contents := toGeminiContents([]Message{{Role: RoleUser, Content: "hi"}})
	assert.Empty(t, system)
	assert.Len(t, contents, 1)
}
