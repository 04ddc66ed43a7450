package permissions

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Role is scoped to a workspace. Team members gain its permissions when
// their team-membership role string equals the role name exactly. No
// uniqueness constraint exists on (workspace_id, name); duplicate rows
// union their permissions during resolution.
type Role struct {
	ID           uuid.UUID      `json:"id"           gorm:"column:id"`
	WorkspaceID  uuid.UUID      `json:"workspaceId"  gorm:"column:workspace_id"`
	Name         string         `json:"name"         gorm:"column:name"`
	Description  string         `json:"description"  gorm:"column:description"`
	Permissions  pq.StringArray `json:"permissions"  gorm:"column:permissions;type:text[]"`
	IsSystemRole bool           `json:"isSystemRole" gorm:"column:is_system_role"`
	CreatedAt    time.Time      `json:"createdAt"    gorm:"column:created_at"`
}

func (Role) TableName() string {
	return "roles"
}

func (r *Role) Validate() error {
	if r.WorkspaceID == uuid.Nil {
		return errors.New("workspace id is required")
	}
	if r.Name == "" {
		return errors.New("role name is required")
	}
	for _, permission := range r.Permissions {
		if !IsKnownPermission(Permission(permission)) {
			return errors.New("unknown permission: " + permission)
		}
	}
	return nil
}
