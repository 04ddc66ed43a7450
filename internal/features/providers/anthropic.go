package providers

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicDefaultMaxTokens = 4096

type AnthropicClient struct {
	client anthropic.Client
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

func (c *AnthropicClient) Provider() ModelProvider {
	return ProviderAnthropic
}

func (c *AnthropicClient) StreamCompletion(
	ctx context.Context,
	request *CompletionRequest,
	onDelta func(text string),
) (*CompletionUsage, error) {
	messages := make([]anthropic.MessageParam, 0, len(request.Messages))

	for _, message := range request.Messages {
		content := []anthropic.ContentBlockParamUnion{
			anthropic.NewTextBlock(message.Content),
		}

		role := anthropic.MessageParamRoleUser
		if message.Role == "assistant" {
			role = anthropic.MessageParamRoleAssistant
		}

		messages = append(messages, anthropic.MessageParam{Role: role, Content: content})
	}

	maxTokens := request.MaxTokens
	if maxTokens == 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(request.Model),
		MaxTokens: int64(maxTokens),
		Messages:  messages,
	}

	if request.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Type: "text", Text: request.SystemPrompt},
		}
	}

	if request.Temperature > 0 {
		params.Temperature = anthropic.Float(request.Temperature)
	}

	stream := c.client.Messages.NewStreaming(ctx, params)

	message := anthropic.Message{}
	for stream.Next() {
		event := stream.Current()

		if err := message.Accumulate(event); err != nil {
			return nil, &UpstreamProviderError{Provider: ProviderAnthropic, Message: err.Error()}
		}

		switch eventVariant := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch deltaVariant := eventVariant.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				onDelta(deltaVariant.Text)
			}
		}
	}

	if err := stream.Err(); err != nil {
		return nil, c.wrapError(err)
	}

	return &CompletionUsage{
		InputTokens:  message.Usage.InputTokens,
		OutputTokens: message.Usage.OutputTokens,
		TotalTokens:  message.Usage.InputTokens + message.Usage.OutputTokens,
	}, nil
}

func (c *AnthropicClient) wrapError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &UpstreamProviderError{
			Provider:   ProviderAnthropic,
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Error(),
		}
	}

	return &UpstreamProviderError{Provider: ProviderAnthropic, Message: err.Error()}
}
