package chats

import (
	"time"

	"chathub-backend/internal/storage"

	"github.com/google/uuid"
)

type ChatRepository struct{}

func (r *ChatRepository) CreateChat(chat *Chat) error {
	if chat.ID == uuid.Nil {
		chat.ID = uuid.New()
	}

	if chat.CreatedAt.IsZero() {
		chat.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(chat).Error
}

func (r *ChatRepository) GetChatByID(chatID uuid.UUID) (*Chat, error) {
	var chat Chat

	if err := storage.GetDb().Where("id = ?", chatID).First(&chat).Error; err != nil {
		return nil, err
	}

	return &chat, nil
}

func (r *ChatRepository) GetWorkspaceChats(workspaceID uuid.UUID) ([]*Chat, error) {
	var workspaceChats []*Chat

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&workspaceChats).Error

	return workspaceChats, err
}

func (r *ChatRepository) DeleteChat(chatID uuid.UUID) error {
	if err := storage.GetDb().
		Where("chat_id = ?", chatID).
		Delete(&ChatMessage{}).Error; err != nil {
		return err
	}

	return storage.GetDb().Delete(&Chat{}, chatID).Error
}

type MessageRepository struct{}

func (r *MessageRepository) CreateMessage(message *ChatMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(message).Error
}

func (r *MessageRepository) GetChatMessages(chatID uuid.UUID) ([]*ChatMessage, error) {
	var messages []*ChatMessage

	err := storage.GetDb().
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error

	return messages, err
}
