package chats

import (
	"testing"

	"chathub-backend/internal/features/providers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_ChatValidate_ValidChat(t *testing.T) {
	chat := &Chat{
		ID:          uuid.New(),
		WorkspaceID: uuid.New(),
		UserID:      uuid.New(),
		Name:        "Release planning",
		Model:       "gpt-4o",
		Provider:    providers.ProviderOpenAI,
	}

	assert.NoError(t, chat.Validate())
}

func Test_ChatValidate_EmptyName_Rejected(t *testing.T) {
	chat := &Chat{
		Name:     "",
		Provider: providers.ProviderOpenAI,
	}

	assert.Error(t, chat.Validate())
}

func Test_ChatValidate_UnknownProvider_Rejected(t *testing.T) {
	chat := &Chat{
		Name:     "Release planning",
		Provider: providers.ModelProvider("cohere"),
	}

	assert.Error(t, chat.Validate())
}
