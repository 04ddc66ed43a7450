package workspaces_services

import (
	"chathub-backend/internal/features/audit_logs"
	"chathub-backend/internal/features/permissions"
	"chathub-backend/internal/features/teams"
	users_services "chathub-backend/internal/features/users/services"
	workspaces_repositories "chathub-backend/internal/features/workspaces/repositories"
)

var workspaceService = &WorkspaceService{
	workspaces_repositories.GetWorkspaceRepository(),
	permissions.GetPermissionService(),
	permissions.GetRoleService(),
	teams.GetTeamService(),
	audit_logs.GetAuditLogService(),
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}

// SetupDependencies registers the home-workspace provisioner with the user
// sign-up flow.
func SetupDependencies() {
	users_services.GetUserService().AddSignUpListener(workspaceService)
}
