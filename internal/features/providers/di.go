package providers

import (
	"chathub-backend/internal/config"
)

const groqBaseURL = "https://api.groq.com/openai/v1"
const mistralBaseURL = "https://api.mistral.ai/v1"

// GetClient returns the client for a provider, or ErrProviderNotConfigured
// when its API key is absent.
func GetClient(provider ModelProvider) (Client, error) {
	env := config.GetEnv()

	switch provider {
	case ProviderOpenAI:
		if env.OpenAIAPIKey == "" {
			return nil, ErrProviderNotConfigured
		}
		return NewOpenAIClient(env.OpenAIAPIKey), nil
	case ProviderAnthropic:
		if env.AnthropicAPIKey == "" {
			return nil, ErrProviderNotConfigured
		}
		return NewAnthropicClient(env.AnthropicAPIKey), nil
	case ProviderGoogle:
		if env.GoogleAPIKey == "" {
			return nil, ErrProviderNotConfigured
		}
		return NewGoogleClient(env.GoogleAPIKey), nil
	case ProviderGroq:
		if env.GroqAPIKey == "" {
			return nil, ErrProviderNotConfigured
		}
		return NewOpenAICompatibleClient(ProviderGroq, env.GroqAPIKey, groqBaseURL), nil
	case ProviderMistral:
		if env.MistralAPIKey == "" {
			return nil, ErrProviderNotConfigured
		}
		return NewOpenAICompatibleClient(ProviderMistral, env.MistralAPIKey, mistralBaseURL), nil
	}

	return nil, ErrProviderNotConfigured
}
