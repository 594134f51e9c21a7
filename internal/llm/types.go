// Package llm provides integration with LLM chat APIs (OpenAI-compatible
// and Gemini) behind a single provider-neutral interface.
package llm

import "context"

// Role identifies who authored a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Generation parameters shared by all providers. Advising answers
// should be factual and reproducible, so the temperature stays low.
const (
	Temperature     = 0.3
	MaxOutputTokens = 1500
)

// Message is one entry of a chat transcript in provider-neutral form.
type Message struct {
	Role    Role
	Content string
}

// Result carries the model's reply and token accounting for one call.
type Result struct {
	Text         string
	InputTokens  int64
	OutputTokens int64
}

// ChatClient is the provider-neutral chat completion interface. One
// call to Complete is one request to the underlying API; no retries
// happen at this layer.
type ChatClient interface {
	// Complete sends the full message list and returns the reply.
	Complete(ctx context.Context, messages []Message) (*Result, error)

	// Provider returns the provider name for logging and metrics.
	Provider() string

	// Close releases resources held by the client.
	Close() error
}
