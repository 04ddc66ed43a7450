package chats

import (
	"chathub-backend/internal/features/providers"

	"github.com/google/uuid"
)

type CreateChatRequestDTO struct {
	Name         string                  `json:"name"         binding:"required,min=1,max=255"`
	Model        string                  `json:"model"`
	Provider     providers.ModelProvider `json:"provider"`
	SystemPrompt string                  `json:"systemPrompt"`
	Temperature  float64                 `json:"temperature"`
	AssistantID  *uuid.UUID              `json:"assistantId"`
}

type SendMessageRequestDTO struct {
	Content string `json:"content" binding:"required"`
}

type GetChatsResponseDTO struct {
	Chats []*Chat `json:"chats"`
}

type GetChatResponseDTO struct {
	Chat     *Chat          `json:"chat"`
	Messages []*ChatMessage `json:"messages"`
}
