package workspaces_repositories

import (
	"time"

	workspaces_models "chathub-backend/internal/features/workspaces/models"
	"chathub-backend/internal/storage"

	"github.com/google/uuid"
)

type WorkspaceRepository struct{}

func (r *WorkspaceRepository) CreateWorkspace(workspace *workspaces_models.Workspace) error {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}

	if workspace.CreatedAt.IsZero() {
		workspace.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(workspace).Error
}

func (r *WorkspaceRepository) GetWorkspaceByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	if err := storage.GetDb().Where("id = ?", workspaceID).First(&workspace).Error; err != nil {
		return nil, err
	}

	return &workspace, nil
}

func (r *WorkspaceRepository) UpdateWorkspace(workspace *workspaces_models.Workspace) error {
	return storage.GetDb().Save(workspace).Error
}

func (r *WorkspaceRepository) DeleteWorkspace(workspaceID uuid.UUID) error {
	return storage.GetDb().Delete(&workspaces_models.Workspace{}, workspaceID).Error
}

// GetUserWorkspaces returns workspaces the user owns plus workspaces owned
// by teams the user is a member of.
func (r *WorkspaceRepository) GetUserWorkspaces(
	userID uuid.UUID,
) ([]*workspaces_models.Workspace, error) {
	var workspaces []*workspaces_models.Workspace

	err := storage.GetDb().
		Distinct("workspaces.*").
		Joins("LEFT JOIN team_members tm ON tm.team_id = workspaces.team_id").
		Where("workspaces.owner_id = ? OR tm.user_id = ?", userID, userID).
		Order("workspaces.created_at ASC").
		Find(&workspaces).Error

	return workspaces, err
}

func (r *WorkspaceRepository) GetHomeWorkspace(
	userID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	err := storage.GetDb().
		Where("owner_id = ? AND is_home = true", userID).
		First(&workspace).Error
	if err != nil {
		return nil, err
	}

	return &workspace, nil
}
