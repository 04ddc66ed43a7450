package permissions

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var systemRoleDefinitions = []struct {
	name        string
	description string
	permissions []Permission
}{
	{
		name:        "owner",
		description: "Full access to the workspace and its team",
		permissions: AllPermissions(),
	},
	{
		name:        "admin",
		description: "Manage the team and workspace content",
		permissions: []Permission{
			PermissionTeamView,
			PermissionTeamManage,
			PermissionTeamInvite,
			PermissionTeamRemoveMembers,
			PermissionWorkspaceRead,
			PermissionWorkspaceWrite,
			PermissionChatsRead,
			PermissionChatsWrite,
			PermissionFilesWrite,
			PermissionAssistantsWrite,
			PermissionUsageRead,
		},
	},
	{
		name:        "member",
		description: "Use the workspace chats",
		permissions: []Permission{
			PermissionTeamView,
			PermissionWorkspaceRead,
			PermissionChatsRead,
			PermissionChatsWrite,
		},
	},
}

// SeedSystemRoles creates the owner/admin/member role rows for a workspace
// that just became team-owned. System roles are not editable through the
// roles API.
func (s *RoleService) SeedSystemRoles(workspaceID uuid.UUID) error {
	for _, definition := range systemRoleDefinitions {
		permissionStrings := make(pq.StringArray, len(definition.permissions))
		for i, permission := range definition.permissions {
			permissionStrings[i] = string(permission)
		}

		role := &Role{
			ID:           uuid.New(),
			WorkspaceID:  workspaceID,
			Name:         definition.name,
			Description:  definition.description,
			Permissions:  permissionStrings,
			IsSystemRole: true,
		}

		if err := s.roleRepository.CreateRole(role); err != nil {
			return fmt.Errorf("failed to seed system role %s: %w", definition.name, err)
		}
	}

	return nil
}
