package chats

import (
	"errors"
	"time"

	"chathub-backend/internal/features/providers"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type Chat struct {
	ID           uuid.UUID               `json:"id"           gorm:"column:id"`
	WorkspaceID  uuid.UUID               `json:"workspaceId"  gorm:"column:workspace_id"`
	UserID       uuid.UUID               `json:"userId"       gorm:"column:user_id"`
	AssistantID  *uuid.UUID              `json:"assistantId"  gorm:"column:assistant_id"`
	Name         string                  `json:"name"         gorm:"column:name"`
	Model        string                  `json:"model"        gorm:"column:model"`
	Provider     providers.ModelProvider `json:"provider"     gorm:"column:provider"`
	SystemPrompt string                  `json:"systemPrompt" gorm:"column:system_prompt"`
	Temperature  float64                 `json:"temperature"  gorm:"column:temperature"`
	CreatedAt    time.Time               `json:"createdAt"    gorm:"column:created_at"`
}

func (Chat) TableName() string {
	return "chats"
}

func (c *Chat) Validate() error {
	if c.Name == "" {
		return errors.New("chat name is required")
	}
	if !c.Provider.IsValid() {
		return errors.New("unknown model provider")
	}
	return nil
}

type ChatMessage struct {
	ID        uuid.UUID   `json:"id"        gorm:"column:id"`
	ChatID    uuid.UUID   `json:"chatId"    gorm:"column:chat_id"`
	Role      MessageRole `json:"role"      gorm:"column:role"`
	Content   string      `json:"content"   gorm:"column:content"`
	CreatedAt time.Time   `json:"createdAt" gorm:"column:created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
