package permissions

import (
	"chathub-backend/internal/features/audit_logs"
	"chathub-backend/internal/features/teams"
	workspaces_repositories "chathub-backend/internal/features/workspaces/repositories"
)

var roleRepository = &RoleRepository{}

var permissionService = NewPermissionService(
	workspaces_repositories.GetWorkspaceRepository(),
	teams.GetMembershipRepository(),
	roleRepository,
)

var roleService = &RoleService{
	roleRepository,
	permissionService,
	audit_logs.GetAuditLogService(),
}

var roleController = &RoleController{
	roleService,
	permissionService,
}

func GetPermissionService() *PermissionService {
	return permissionService
}

func GetRoleService() *RoleService {
	return roleService
}

func GetRoleController() *RoleController {
	return roleController
}
