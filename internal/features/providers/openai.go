package providers

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient also serves groq and mistral: both expose OpenAI-compatible
// chat completion APIs behind their own base URLs.
type OpenAIClient struct {
	client   openai.Client
	provider ModelProvider
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client:   openai.NewClient(option.WithAPIKey(apiKey)),
		provider: ProviderOpenAI,
	}
}

func NewOpenAICompatibleClient(
	provider ModelProvider,
	apiKey string,
	baseURL string,
) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		),
		provider: provider,
	}
}

func (c *OpenAIClient) Provider() ModelProvider {
	return c.provider
}

func (c *OpenAIClient) StreamCompletion(
	ctx context.Context,
	request *CompletionRequest,
	onDelta func(text string),
) (*CompletionUsage, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(request.Messages)+1)

	if request.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(request.SystemPrompt))
	}

	for _, message := range request.Messages {
		switch message.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(message.Content))
		case "system":
			messages = append(messages, openai.SystemMessage(message.Content))
		default:
			messages = append(messages, openai.UserMessage(message.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    request.Model,
		Messages: messages,
		StreamOptions: openai.ChatCompletionStreamOptionsParam{
			IncludeUsage: openai.Bool(true),
		},
	}

	if request.Temperature > 0 {
		params.Temperature = openai.Float(request.Temperature)
	}

	if request.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(request.MaxTokens))
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, params)

	var acc openai.ChatCompletionAccumulator
	for stream.Next() {
		chunk := stream.Current()
		acc.AddChunk(chunk)

		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
			onDelta(chunk.Choices[0].Delta.Content)
		}
	}

	if err := stream.Err(); err != nil {
		return nil, c.wrapError(err)
	}

	if acc.Usage.TotalTokens == 0 && acc.Usage.PromptTokens == 0 {
		return nil, nil
	}

	return &CompletionUsage{
		InputTokens:  acc.Usage.PromptTokens,
		OutputTokens: acc.Usage.CompletionTokens,
		TotalTokens:  acc.Usage.TotalTokens,
	}, nil
}

func (c *OpenAIClient) wrapError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &UpstreamProviderError{
			Provider:   c.provider,
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	return &UpstreamProviderError{Provider: c.provider, Message: err.Error()}
}
