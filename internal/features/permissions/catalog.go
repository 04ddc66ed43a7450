package permissions

// Permission is an opaque capability identifier. Permissions are checked
// independently, never combined hierarchically.
type Permission string

const (
	PermissionTeamView          Permission = "team.view"
	PermissionTeamManage        Permission = "team.manage"
	PermissionTeamInvite        Permission = "team.invite"
	PermissionTeamRemoveMembers Permission = "team.remove_members"
	PermissionWorkspaceRead     Permission = "workspace.read"
	PermissionWorkspaceWrite    Permission = "workspace.write"
	PermissionWorkspaceManage   Permission = "workspace.manage"
	PermissionChatsRead         Permission = "chats.read"
	PermissionChatsWrite        Permission = "chats.write"
	PermissionFilesWrite        Permission = "files.write"
	PermissionAssistantsWrite   Permission = "assistants.write"
	PermissionRolesManage       Permission = "roles.manage"
	PermissionUsageRead         Permission = "usage.read"
	PermissionUsersAnalytics    Permission = "users.analytics"
)

var permissionCatalog = []Permission{
	PermissionTeamView,
	PermissionTeamManage,
	PermissionTeamInvite,
	PermissionTeamRemoveMembers,
	PermissionWorkspaceRead,
	PermissionWorkspaceWrite,
	PermissionWorkspaceManage,
	PermissionChatsRead,
	PermissionChatsWrite,
	PermissionFilesWrite,
	PermissionAssistantsWrite,
	PermissionRolesManage,
	PermissionUsageRead,
	PermissionUsersAnalytics,
}

// AllPermissions returns the full catalog. The returned slice is a copy.
func AllPermissions() []Permission {
	catalog := make([]Permission, len(permissionCatalog))
	copy(catalog, permissionCatalog)
	return catalog
}

func IsKnownPermission(permission Permission) bool {
	for _, known := range permissionCatalog {
		if known == permission {
			return true
		}
	}
	return false
}
