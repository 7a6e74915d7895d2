// Package llm provides LLM client interfaces and implementations.
package llm

import (
	"context"
)

// CompletionRequest represents a completion request.
type CompletionRequest struct {
	Model       string
	Messages    []ChatMessage
	MaxTokens   int
	Temperature float64

	// JSONMode asks the provider to constrain output to a JSON object,
	// where supported.
	JSONMode bool
}

// ChatMessage represents a chat message for LLM.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionResponse represents a completion response.
type CompletionResponse struct {
	Content    string
	Model      string
	TokensIn   int
	TokensOut  int
	StopReason string
	LatencyMs  int64
}

// Client is the interface for LLM providers. Completions are synchronous
// and single-shot: one call per generation, no retry, no streaming.
type Client interface {
	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider name.
	Name() string

	// DefaultModel returns the model used when the request names none.
	DefaultModel() string
}

// Provider is the type of LLM provider.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// NewClient creates a new LLM client based on provider.
func NewClient(provider Provider, apiKey, baseURL string) (Client, error) {
	switch provider {
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey, baseURL)
	default:
		return NewOpenAIClient(apiKey, baseURL)
	}
}
