package workspaces_services

import (
	"errors"
	"fmt"

	"chathub-backend/internal/features/audit_logs"
	"chathub-backend/internal/features/permissions"
	"chathub-backend/internal/features/teams"
	users_models "chathub-backend/internal/features/users/models"
	workspaces_dto "chathub-backend/internal/features/workspaces/dto"
	workspaces_models "chathub-backend/internal/features/workspaces/models"
	workspaces_repositories "chathub-backend/internal/features/workspaces/repositories"

	"github.com/google/uuid"
)

const defaultChatModel = "gpt-4o"
const defaultContextLength = 4096

type WorkspaceService struct {
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	permissionService   *permissions.PermissionService
	roleService         *permissions.RoleService
	teamService         *teams.TeamService
	auditLogService     *audit_logs.AuditLogService
}

func (s *WorkspaceService) CreateWorkspace(
	request *workspaces_dto.CreateWorkspaceRequestDTO,
	creator *users_models.User,
) (*workspaces_models.Workspace, error) {
	workspace := &workspaces_models.Workspace{
		ID:                   uuid.New(),
		Name:                 request.Name,
		OwnerID:              creator.ID,
		DefaultModel:         request.DefaultModel,
		DefaultSystemPrompt:  request.DefaultSystemPrompt,
		DefaultTemperature:   request.DefaultTemperature,
		DefaultContextLength: request.DefaultContextLength,
		EmbeddingsProvider:   request.EmbeddingsProvider,
	}

	applyWorkspaceDefaults(workspace)

	if err := s.workspaceRepository.CreateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace created: %s", workspace.Name),
		&creator.ID,
		&workspace.ID,
	)

	return workspace, nil
}

// OnUserSignUp provisions the home workspace. Every user has exactly one,
// created here and never deletable.
func (s *WorkspaceService) OnUserSignUp(userID uuid.UUID, userName string) error {
	workspace := &workspaces_models.Workspace{
		ID:      uuid.New(),
		Name:    fmt.Sprintf("%s's Workspace", userName),
		OwnerID: userID,
		IsHome:  true,
	}

	applyWorkspaceDefaults(workspace)

	if err := s.workspaceRepository.CreateWorkspace(workspace); err != nil {
		return fmt.Errorf("failed to create home workspace: %w", err)
	}

	return nil
}

func (s *WorkspaceService) GetWorkspace(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, workspaceID, permissions.PermissionWorkspaceRead) {
		return nil, errors.New("insufficient permissions to view workspace")
	}

	return workspace, nil
}

func (s *WorkspaceService) GetUserWorkspaces(
	user *users_models.User,
) (*workspaces_dto.ListWorkspacesResponseDTO, error) {
	workspaces, err := s.workspaceRepository.GetUserWorkspaces(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user workspaces: %w", err)
	}

	return &workspaces_dto.ListWorkspacesResponseDTO{Workspaces: workspaces}, nil
}

func (s *WorkspaceService) UpdateWorkspace(
	workspaceID uuid.UUID,
	request *workspaces_dto.UpdateWorkspaceRequestDTO,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, workspaceID, permissions.PermissionWorkspaceManage) {
		return nil, errors.New("insufficient permissions to update workspace")
	}

	workspace.UpdateFromDTO(&workspaces_models.Workspace{
		Name:                 request.Name,
		DefaultModel:         request.DefaultModel,
		DefaultSystemPrompt:  request.DefaultSystemPrompt,
		DefaultTemperature:   request.DefaultTemperature,
		DefaultContextLength: request.DefaultContextLength,
		EmbeddingsProvider:   request.EmbeddingsProvider,
	})
	applyWorkspaceDefaults(workspace)

	if err := s.workspaceRepository.UpdateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace updated: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return workspace, nil
}

func (s *WorkspaceService) DeleteWorkspace(workspaceID uuid.UUID, user *users_models.User) error {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, workspaceID, permissions.PermissionWorkspaceManage) {
		return errors.New("insufficient permissions to delete workspace")
	}

	if workspace.IsHome {
		return errors.New("home workspace cannot be deleted")
	}

	if err := s.workspaceRepository.DeleteWorkspace(workspaceID); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace deleted: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return nil
}

// ConvertToTeam turns a private workspace into a team-owned one: creates
// the team with the caller as owner, attaches it to the workspace, and
// seeds the owner/admin/member system roles.
func (s *WorkspaceService) ConvertToTeam(
	workspaceID uuid.UUID,
	request *workspaces_dto.ConvertToTeamRequestDTO,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.OwnerID != user.ID {
		return nil, errors.New("insufficient permissions to convert workspace")
	}

	if workspace.TeamID != nil {
		return nil, errors.New("workspace is already team-owned")
	}

	team, err := s.teamService.CreateTeam(request.TeamName, user)
	if err != nil {
		return nil, err
	}

	workspace.TeamID = &team.ID

	if err := s.workspaceRepository.UpdateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to attach team to workspace: %w", err)
	}

	if err := s.roleService.SeedSystemRoles(workspaceID); err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace converted to team mode: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return workspace, nil
}

func (s *WorkspaceService) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, workspaceID, permissions.PermissionWorkspaceManage) {
		return nil, errors.New("insufficient permissions to view workspace audit logs")
	}

	return s.auditLogService.GetWorkspaceAuditLogs(workspaceID, request)
}

func (s *WorkspaceService) GetWorkspaceByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	return s.workspaceRepository.GetWorkspaceByID(workspaceID)
}

func applyWorkspaceDefaults(workspace *workspaces_models.Workspace) {
	if workspace.DefaultModel == "" {
		workspace.DefaultModel = defaultChatModel
	}
	if workspace.DefaultContextLength <= 0 {
		workspace.DefaultContextLength = defaultContextLength
	}
	// Zero means unset, matching the chat-creation fallback.
	if workspace.DefaultTemperature <= 0 || workspace.DefaultTemperature > 2 {
		workspace.DefaultTemperature = 1
	}
	if workspace.EmbeddingsProvider == "" {
		workspace.EmbeddingsProvider = "openai"
	}
}
