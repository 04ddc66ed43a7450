package chats

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chathub-backend/internal/features/assistants"
	"chathub-backend/internal/features/audit_logs"
	"chathub-backend/internal/features/permissions"
	"chathub-backend/internal/features/providers"
	"chathub-backend/internal/features/usage"
	users_models "chathub-backend/internal/features/users/models"
	workspaces_repositories "chathub-backend/internal/features/workspaces/repositories"

	"github.com/google/uuid"
)

type ChatService struct {
	chatRepository      *ChatRepository
	messageRepository   *MessageRepository
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	permissionService   *permissions.PermissionService
	assistantService    *assistants.AssistantService
	usageService        *usage.UsageService
	auditLogService     *audit_logs.AuditLogService
	getProviderClient   func(provider providers.ModelProvider) (providers.Client, error)
}

func (s *ChatService) CreateChat(
	workspaceID uuid.UUID,
	request *CreateChatRequestDTO,
	user *users_models.User,
) (*Chat, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, workspaceID, permissions.PermissionChatsWrite) {
		return nil, errors.New("insufficient permissions to create chats")
	}

	chat := &Chat{
		ID:           uuid.New(),
		WorkspaceID:  workspaceID,
		UserID:       user.ID,
		AssistantID:  request.AssistantID,
		Name:         request.Name,
		Model:        request.Model,
		Provider:     request.Provider,
		SystemPrompt: request.SystemPrompt,
		Temperature:  request.Temperature,
	}

	if chat.Model == "" {
		chat.Model = workspace.DefaultModel
	}
	if chat.Provider == "" {
		chat.Provider = providers.ProviderOpenAI
	}
	if chat.SystemPrompt == "" {
		chat.SystemPrompt = workspace.DefaultSystemPrompt
	}
	if chat.Temperature == 0 {
		chat.Temperature = workspace.DefaultTemperature
	}

	if request.AssistantID != nil {
		assistant, err := s.assistantService.GetAssistantByID(*request.AssistantID)
		if err != nil {
			return nil, fmt.Errorf("failed to get assistant: %w", err)
		}
		if assistant.WorkspaceID != workspaceID {
			return nil, errors.New("assistant belongs to another workspace")
		}
	}

	if err := chat.Validate(); err != nil {
		return nil, err
	}

	if err := s.chatRepository.CreateChat(chat); err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Chat created: %s", chat.Name),
		&user.ID,
		&workspaceID,
	)

	return chat, nil
}

func (s *ChatService) GetWorkspaceChats(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*GetChatsResponseDTO, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, workspaceID, permissions.PermissionChatsRead) {
		return nil, errors.New("insufficient permissions to view chats")
	}

	workspaceChats, err := s.chatRepository.GetWorkspaceChats(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chats: %w", err)
	}

	return &GetChatsResponseDTO{Chats: workspaceChats}, nil
}

func (s *ChatService) GetChat(
	chatID uuid.UUID,
	user *users_models.User,
) (*GetChatResponseDTO, error) {
	chat, err := s.chatRepository.GetChatByID(chatID)
	if err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepository.GetWorkspaceByID(chat.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, chat.WorkspaceID, permissions.PermissionChatsRead) {
		return nil, errors.New("insufficient permissions to view chats")
	}

	messages, err := s.messageRepository.GetChatMessages(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat messages: %w", err)
	}

	return &GetChatResponseDTO{Chat: chat, Messages: messages}, nil
}

func (s *ChatService) DeleteChat(chatID uuid.UUID, user *users_models.User) error {
	chat, err := s.chatRepository.GetChatByID(chatID)
	if err != nil {
		return err
	}

	workspace, err := s.workspaceRepository.GetWorkspaceByID(chat.WorkspaceID)
	if err != nil {
		return err
	}

	if workspace.OwnerID != user.ID && chat.UserID != user.ID &&
		!s.permissionService.HasPermission(user.ID, chat.WorkspaceID, permissions.PermissionChatsWrite) {
		return errors.New("insufficient permissions to delete chats")
	}

	if err := s.chatRepository.DeleteChat(chatID); err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Chat deleted: %s", chat.Name),
		&user.ID,
		&chat.WorkspaceID,
	)

	return nil
}

// SendMessage runs one chat turn: permission check, usage enforcement,
// provider streaming call, then persistence. Text fragments are forwarded
// to onDelta as they arrive. The usage record is written only after the
// stream completes and only when the provider reported usage; an aborted
// or unreported stream leaves no partial row.
func (s *ChatService) SendMessage(
	ctx context.Context,
	chatID uuid.UUID,
	request *SendMessageRequestDTO,
	user *users_models.User,
	onDelta func(text string),
) (*ChatMessage, error) {
	chat, err := s.chatRepository.GetChatByID(chatID)
	if err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepository.GetWorkspaceByID(chat.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, chat.WorkspaceID, permissions.PermissionChatsWrite) {
		return nil, errors.New("insufficient permissions to send messages")
	}

	model := chat.Model
	systemPrompt := chat.SystemPrompt
	temperature := chat.Temperature

	if chat.AssistantID != nil {
		assistant, err := s.assistantService.GetAssistantByID(*chat.AssistantID)
		if err != nil {
			return nil, fmt.Errorf("failed to get assistant: %w", err)
		}

		model = assistant.Model
		systemPrompt = assistant.SystemPrompt
		temperature = assistant.Temperature
	}

	// Usage enforcement runs on the openai-routed path only. Other
	// provider routes bypass the limiter.
	if chat.Provider == providers.ProviderOpenAI {
		_, err := s.usageService.GetLimiter().EnforceUsageLimits(&usage.EnforcementInput{
			UserID:        user.ID,
			ModelName:     model,
			ModelProvider: string(chat.Provider),
			AgentID:       chat.AssistantID,
		})
		if err != nil {
			return nil, err
		}
	}

	history, err := s.messageRepository.GetChatMessages(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat messages: %w", err)
	}

	userMessage := &ChatMessage{
		ID:      uuid.New(),
		ChatID:  chatID,
		Role:    MessageRoleUser,
		Content: request.Content,
	}

	if err := s.messageRepository.CreateMessage(userMessage); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	providerMessages := make([]providers.Message, 0, len(history)+1)
	for _, message := range history {
		providerMessages = append(providerMessages, providers.Message{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}
	providerMessages = append(providerMessages, providers.Message{
		Role:    string(MessageRoleUser),
		Content: request.Content,
	})

	client, err := s.getProviderClient(chat.Provider)
	if err != nil {
		return nil, err
	}

	var responseText strings.Builder

	completionUsage, err := client.StreamCompletion(ctx, &providers.CompletionRequest{
		Model:        model,
		SystemPrompt: systemPrompt,
		Messages:     providerMessages,
		Temperature:  temperature,
		MaxTokens:    workspace.DefaultContextLength,
	}, func(text string) {
		responseText.WriteString(text)
		onDelta(text)
	})
	if err != nil {
		return nil, err
	}

	assistantMessage := &ChatMessage{
		ID:      uuid.New(),
		ChatID:  chatID,
		Role:    MessageRoleAssistant,
		Content: responseText.String(),
	}

	if err := s.messageRepository.CreateMessage(assistantMessage); err != nil {
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}

	if completionUsage != nil {
		s.recordCompletionUsage(chat, model, completionUsage, user)
	}

	return assistantMessage, nil
}

// recordCompletionUsage appends the turn's token accounting. Failures are
// logged inside the usage service path but do not fail the turn: the
// response already streamed to the client.
func (s *ChatService) recordCompletionUsage(
	chat *Chat,
	model string,
	completionUsage *providers.CompletionUsage,
	user *users_models.User,
) {
	_, err := s.usageService.RecordUsage(&usage.RecordUsageRequestDTO{
		WorkspaceID:   &chat.WorkspaceID,
		AgentID:       chat.AssistantID,
		ModelProvider: string(chat.Provider),
		ModelName:     model,
		Usage: usage.UsageTokensDTO{
			InputTokens:  &completionUsage.InputTokens,
			OutputTokens: &completionUsage.OutputTokens,
			TotalTokens:  &completionUsage.TotalTokens,
		},
	}, user)
	if err != nil {
		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Failed to record token usage for chat %s: %v", chat.ID, err),
			&user.ID,
			&chat.WorkspaceID,
		)
	}
}
