package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ModelProvider_IsValid(t *testing.T) {
	assert.True(t, ProviderOpenAI.IsValid())
	assert.True(t, ProviderAnthropic.IsValid())
	assert.True(t, ProviderGoogle.IsValid())
	assert.True(t, ProviderGroq.IsValid())
	assert.True(t, ProviderMistral.IsValid())

	assert.False(t, ModelProvider("").IsValid())
	assert.False(t, ModelProvider("azure").IsValid())
	assert.False(t, ModelProvider("OpenAI").IsValid())
}

func Test_UpstreamProviderError_ForwardsProviderMessage(t *testing.T) {
	err := &UpstreamProviderError{
		Provider:   ProviderAnthropic,
		StatusCode: 429,
		Message:    "rate limited",
	}

	assert.Equal(
		t,
		"provider anthropic request failed (status 429): rate limited",
		err.Error(),
	)
}
