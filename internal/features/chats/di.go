package chats

import (
	"chathub-backend/internal/features/assistants"
	"chathub-backend/internal/features/audit_logs"
	"chathub-backend/internal/features/permissions"
	"chathub-backend/internal/features/providers"
	"chathub-backend/internal/features/usage"
	workspaces_repositories "chathub-backend/internal/features/workspaces/repositories"
)

var chatRepository = &ChatRepository{}
var messageRepository = &MessageRepository{}

var chatService = &ChatService{
	chatRepository,
	messageRepository,
	workspaces_repositories.GetWorkspaceRepository(),
	permissions.GetPermissionService(),
	assistants.GetAssistantService(),
	usage.GetUsageService(),
	audit_logs.GetAuditLogService(),
	providers.GetClient,
}

var chatController = &ChatController{
	chatService,
}

func GetChatService() *ChatService {
	return chatService
}

func GetChatController() *ChatController {
	return chatController
}
