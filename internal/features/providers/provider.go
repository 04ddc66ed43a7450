package providers

import (
	"context"
	"errors"
	"fmt"
)

type ModelProvider string

const (
	ProviderOpenAI    ModelProvider = "openai"
	ProviderAnthropic ModelProvider = "anthropic"
	ProviderGoogle    ModelProvider = "google"
	ProviderGroq      ModelProvider = "groq"
	ProviderMistral   ModelProvider = "mistral"
)

func (p ModelProvider) IsValid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogle, ProviderGroq, ProviderMistral:
		return true
	}
	return false
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Model        string
	SystemPrompt string
	Messages     []Message
	Temperature  float64
	MaxTokens    int
}

// CompletionUsage is the final token accounting a provider reported for a
// streamed response. Some providers omit it on streaming responses; callers
// must handle a nil result.
type CompletionUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// Client streams one chat completion. onDelta is called for each text
// fragment as it arrives; the returned usage is nil when the provider did
// not report any.
type Client interface {
	Provider() ModelProvider
	StreamCompletion(
		ctx context.Context,
		request *CompletionRequest,
		onDelta func(text string),
	) (*CompletionUsage, error)
}

// UpstreamProviderError wraps a failure of the completion call itself, with
// the provider's message and HTTP status forwarded for user display.
type UpstreamProviderError struct {
	Provider   ModelProvider
	StatusCode int
	Message    string
}

func (e *UpstreamProviderError) Error() string {
	return fmt.Sprintf("provider %s request failed (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

var ErrProviderNotConfigured = errors.New("provider is not configured")
