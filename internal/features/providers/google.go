package providers

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type GoogleClient struct {
	apiKey string
}

func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{apiKey: apiKey}
}

func (c *GoogleClient) Provider() ModelProvider {
	return ProviderGoogle
}

func (c *GoogleClient) StreamCompletion(
	ctx context.Context,
	request *CompletionRequest,
	onDelta func(text string),
) (*CompletionUsage, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &UpstreamProviderError{
			Provider: ProviderGoogle,
			Message:  fmt.Sprintf("failed to create client: %v", err),
		}
	}

	contents := make([]*genai.Content, 0, len(request.Messages))
	for _, message := range request.Messages {
		role := genai.RoleUser
		if message.Role == "assistant" {
			role = genai.RoleModel
		}

		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: message.Content}},
		})
	}

	config := &genai.GenerateContentConfig{}

	if request.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: request.SystemPrompt}},
		}
	}

	if request.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(request.Temperature))
	}

	if request.MaxTokens > 0 {
		config.MaxOutputTokens = int32(request.MaxTokens)
	}

	var usage *CompletionUsage

	for chunk, err := range client.Models.GenerateContentStream(ctx, request.Model, contents, config) {
		if err != nil {
			return nil, &UpstreamProviderError{Provider: ProviderGoogle, Message: err.Error()}
		}

		if text := chunk.Text(); text != "" {
			onDelta(text)
		}

		// Usage metadata arrives on the final chunk.
		if chunk.UsageMetadata != nil {
			usage = &CompletionUsage{
				InputTokens:  int64(chunk.UsageMetadata.PromptTokenCount),
				OutputTokens: int64(chunk.UsageMetadata.CandidatesTokenCount),
				TotalTokens:  int64(chunk.UsageMetadata.TotalTokenCount),
			}
		}
	}

	return usage, nil
}
