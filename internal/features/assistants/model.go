package assistants

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Assistant is a workspace-scoped chat preset. Chatting through an
// assistant applies its model and prompt and meters usage against
// agent-scoped limits.
type Assistant struct {
	ID           uuid.UUID `json:"id"           gorm:"column:id"`
	WorkspaceID  uuid.UUID `json:"workspaceId"  gorm:"column:workspace_id"`
	Name         string    `json:"name"         gorm:"column:name"`
	Description  string    `json:"description"  gorm:"column:description"`
	Model        string    `json:"model"        gorm:"column:model"`
	SystemPrompt string    `json:"systemPrompt" gorm:"column:system_prompt"`
	Temperature  float64   `json:"temperature"  gorm:"column:temperature"`
	CreatedAt    time.Time `json:"createdAt"    gorm:"column:created_at"`
}

func (Assistant) TableName() string {
	return "assistants"
}

func (a *Assistant) Validate() error {
	if a.Name == "" {
		return errors.New("assistant name is required")
	}
	if a.Model == "" {
		return errors.New("assistant model is required")
	}
	if a.Temperature < 0 || a.Temperature > 2 {
		return errors.New("temperature must be between 0 and 2")
	}
	return nil
}

type SaveAssistantRequestDTO struct {
	Name         string  `json:"name"         binding:"required,min=1,max=255"`
	Description  string  `json:"description"  binding:"max=1024"`
	Model        string  `json:"model"        binding:"required"`
	SystemPrompt string  `json:"systemPrompt"`
	Temperature  float64 `json:"temperature"`
}

type GetAssistantsResponseDTO struct {
	Assistants []*Assistant `json:"assistants"`
}
