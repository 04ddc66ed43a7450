package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is the tenancy unit. A workspace with a nil TeamID is private:
// only its owner can see it. Attaching a team opens it to members whose
// team role names resolve to role rows scoped to this workspace.
type Workspace struct {
	ID                   uuid.UUID  `json:"id"                   gorm:"column:id"`
	Name                 string     `json:"name"                 gorm:"column:name"`
	OwnerID              uuid.UUID  `json:"ownerId"              gorm:"column:owner_id"`
	TeamID               *uuid.UUID `json:"teamId"               gorm:"column:team_id"`
	IsHome               bool       `json:"isHome"               gorm:"column:is_home"`
	DefaultModel         string     `json:"defaultModel"         gorm:"column:default_model"`
	DefaultSystemPrompt  string     `json:"defaultSystemPrompt"  gorm:"column:default_system_prompt"`
	DefaultTemperature   float64    `json:"defaultTemperature"   gorm:"column:default_temperature"`
	DefaultContextLength int        `json:"defaultContextLength" gorm:"column:default_context_length"`
	EmbeddingsProvider   string     `json:"embeddingsProvider"   gorm:"column:embeddings_provider"`
	CreatedAt            time.Time  `json:"createdAt"            gorm:"column:created_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

func (w *Workspace) IsPrivate() bool {
	return w.TeamID == nil
}

func (w *Workspace) UpdateFromDTO(updateDTO *Workspace) {
	w.Name = updateDTO.Name
	w.DefaultModel = updateDTO.DefaultModel
	w.DefaultSystemPrompt = updateDTO.DefaultSystemPrompt
	w.DefaultTemperature = updateDTO.DefaultTemperature
	w.DefaultContextLength = updateDTO.DefaultContextLength
	w.EmbeddingsProvider = updateDTO.EmbeddingsProvider
}
