package assistants

import (
	"chathub-backend/internal/features/audit_logs"
	"chathub-backend/internal/features/permissions"
	workspaces_repositories "chathub-backend/internal/features/workspaces/repositories"
)

var assistantRepository = &AssistantRepository{}

var assistantService = &AssistantService{
	assistantRepository,
	workspaces_repositories.GetWorkspaceRepository(),
	permissions.GetPermissionService(),
	audit_logs.GetAuditLogService(),
}

var assistantController = &AssistantController{
	assistantService,
}

func GetAssistantService() *AssistantService {
	return assistantService
}

func GetAssistantController() *AssistantController {
	return assistantController
}
