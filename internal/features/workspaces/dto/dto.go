package workspaces_dto

import (
	workspaces_models "chathub-backend/internal/features/workspaces/models"
)

type CreateWorkspaceRequestDTO struct {
	Name                 string  `json:"name"                 binding:"required,min=1,max=255"`
	DefaultModel         string  `json:"defaultModel"`
	DefaultSystemPrompt  string  `json:"defaultSystemPrompt"`
	DefaultTemperature   float64 `json:"defaultTemperature"`
	DefaultContextLength int     `json:"defaultContextLength"`
	EmbeddingsProvider   string  `json:"embeddingsProvider"`
}

type UpdateWorkspaceRequestDTO struct {
	Name                 string  `json:"name"                 binding:"required,min=1,max=255"`
	DefaultModel         string  `json:"defaultModel"`
	DefaultSystemPrompt  string  `json:"defaultSystemPrompt"`
	DefaultTemperature   float64 `json:"defaultTemperature"`
	DefaultContextLength int     `json:"defaultContextLength"`
	EmbeddingsProvider   string  `json:"embeddingsProvider"`
}

type ConvertToTeamRequestDTO struct {
	TeamName string `json:"teamName" binding:"required,min=1,max=255"`
}

type ListWorkspacesResponseDTO struct {
	Workspaces []*workspaces_models.Workspace `json:"workspaces"`
}
