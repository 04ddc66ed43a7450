package permissions

import (
	"time"

	"chathub-backend/internal/storage"

	"github.com/google/uuid"
)

type RoleRepository struct{}

func (r *RoleRepository) CreateRole(role *Role) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}

	if role.CreatedAt.IsZero() {
		role.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(role).Error
}

func (r *RoleRepository) GetRoleByID(roleID uuid.UUID) (*Role, error) {
	var role Role

	if err := storage.GetDb().Where("id = ?", roleID).First(&role).Error; err != nil {
		return nil, err
	}

	return &role, nil
}

func (r *RoleRepository) GetWorkspaceRoles(workspaceID uuid.UUID) ([]*Role, error) {
	var roles []*Role

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&roles).Error

	return roles, err
}

// GetWorkspaceRolesByNames returns every role row in the workspace whose
// name is in the given set, duplicates included.
func (r *RoleRepository) GetWorkspaceRolesByNames(
	workspaceID uuid.UUID,
	names []string,
) ([]*Role, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var roles []*Role

	err := storage.GetDb().
		Where("workspace_id = ? AND name IN ?", workspaceID, names).
		Find(&roles).Error

	return roles, err
}

func (r *RoleRepository) UpdateRole(role *Role) error {
	return storage.GetDb().Save(role).Error
}

func (r *RoleRepository) DeleteRole(roleID uuid.UUID) error {
	return storage.GetDb().Delete(&Role{}, roleID).Error
}
