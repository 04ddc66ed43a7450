package assistants

import (
	"time"

	"chathub-backend/internal/storage"

	"github.com/google/uuid"
)

type AssistantRepository struct{}

func (r *AssistantRepository) CreateAssistant(assistant *Assistant) error {
	if assistant.ID == uuid.Nil {
		assistant.ID = uuid.New()
	}

	if assistant.CreatedAt.IsZero() {
		assistant.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(assistant).Error
}

func (r *AssistantRepository) GetAssistantByID(assistantID uuid.UUID) (*Assistant, error) {
	var assistant Assistant

	if err := storage.GetDb().Where("id = ?", assistantID).First(&assistant).Error; err != nil {
		return nil, err
	}

	return &assistant, nil
}

func (r *AssistantRepository) GetWorkspaceAssistants(
	workspaceID uuid.UUID,
) ([]*Assistant, error) {
	var workspaceAssistants []*Assistant

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&workspaceAssistants).Error

	return workspaceAssistants, err
}

func (r *AssistantRepository) UpdateAssistant(assistant *Assistant) error {
	return storage.GetDb().Save(assistant).Error
}

func (r *AssistantRepository) DeleteAssistant(assistantID uuid.UUID) error {
	return storage.GetDb().Delete(&Assistant{}, assistantID).Error
}
