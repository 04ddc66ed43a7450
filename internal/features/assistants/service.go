package assistants

import (
	"errors"
	"fmt"

	"chathub-backend/internal/features/audit_logs"
	"chathub-backend/internal/features/permissions"
	users_models "chathub-backend/internal/features/users/models"
	workspaces_repositories "chathub-backend/internal/features/workspaces/repositories"

	"github.com/google/uuid"
)

type AssistantService struct {
	assistantRepository *AssistantRepository
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	permissionService   *permissions.PermissionService
	auditLogService     *audit_logs.AuditLogService
}

func (s *AssistantService) CreateAssistant(
	workspaceID uuid.UUID,
	request *SaveAssistantRequestDTO,
	user *users_models.User,
) (*Assistant, error) {
	if err := s.checkWritePermission(workspaceID, user); err != nil {
		return nil, err
	}

	assistant := &Assistant{
		ID:           uuid.New(),
		WorkspaceID:  workspaceID,
		Name:         request.Name,
		Description:  request.Description,
		Model:        request.Model,
		SystemPrompt: request.SystemPrompt,
		Temperature:  request.Temperature,
	}

	if err := assistant.Validate(); err != nil {
		return nil, err
	}

	if err := s.assistantRepository.CreateAssistant(assistant); err != nil {
		return nil, fmt.Errorf("failed to create assistant: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Assistant created: %s", assistant.Name),
		&user.ID,
		&workspaceID,
	)

	return assistant, nil
}

func (s *AssistantService) GetWorkspaceAssistants(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*GetAssistantsResponseDTO, error) {
	if err := s.checkReadPermission(workspaceID, user); err != nil {
		return nil, err
	}

	workspaceAssistants, err := s.assistantRepository.GetWorkspaceAssistants(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assistants: %w", err)
	}

	return &GetAssistantsResponseDTO{Assistants: workspaceAssistants}, nil
}

func (s *AssistantService) GetAssistant(
	assistantID uuid.UUID,
	user *users_models.User,
) (*Assistant, error) {
	assistant, err := s.assistantRepository.GetAssistantByID(assistantID)
	if err != nil {
		return nil, err
	}

	if err := s.checkReadPermission(assistant.WorkspaceID, user); err != nil {
		return nil, err
	}

	return assistant, nil
}

func (s *AssistantService) UpdateAssistant(
	assistantID uuid.UUID,
	request *SaveAssistantRequestDTO,
	user *users_models.User,
) (*Assistant, error) {
	assistant, err := s.assistantRepository.GetAssistantByID(assistantID)
	if err != nil {
		return nil, err
	}

	if err := s.checkWritePermission(assistant.WorkspaceID, user); err != nil {
		return nil, err
	}

	assistant.Name = request.Name
	assistant.Description = request.Description
	assistant.Model = request.Model
	assistant.SystemPrompt = request.SystemPrompt
	assistant.Temperature = request.Temperature

	if err := assistant.Validate(); err != nil {
		return nil, err
	}

	if err := s.assistantRepository.UpdateAssistant(assistant); err != nil {
		return nil, fmt.Errorf("failed to update assistant: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Assistant updated: %s", assistant.Name),
		&user.ID,
		&assistant.WorkspaceID,
	)

	return assistant, nil
}

func (s *AssistantService) DeleteAssistant(assistantID uuid.UUID, user *users_models.User) error {
	assistant, err := s.assistantRepository.GetAssistantByID(assistantID)
	if err != nil {
		return err
	}

	if err := s.checkWritePermission(assistant.WorkspaceID, user); err != nil {
		return err
	}

	if err := s.assistantRepository.DeleteAssistant(assistantID); err != nil {
		return fmt.Errorf("failed to delete assistant: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Assistant deleted: %s", assistant.Name),
		&user.ID,
		&assistant.WorkspaceID,
	)

	return nil
}

func (s *AssistantService) GetAssistantByID(assistantID uuid.UUID) (*Assistant, error) {
	return s.assistantRepository.GetAssistantByID(assistantID)
}

func (s *AssistantService) checkWritePermission(
	workspaceID uuid.UUID,
	user *users_models.User,
) error {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, workspaceID, permissions.PermissionAssistantsWrite) {
		return errors.New("insufficient permissions to manage assistants")
	}

	return nil
}

func (s *AssistantService) checkReadPermission(
	workspaceID uuid.UUID,
	user *users_models.User,
) error {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, workspaceID, permissions.PermissionWorkspaceRead) {
		return errors.New("insufficient permissions to view assistants")
	}

	return nil
}
