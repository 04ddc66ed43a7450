package permissions

import (
	"errors"
	"fmt"

	"chathub-backend/internal/features/audit_logs"
	users_models "chathub-backend/internal/features/users/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type RoleService struct {
	roleRepository    *RoleRepository
	permissionService *PermissionService
	auditLogService   *audit_logs.AuditLogService
}

func (s *RoleService) GetWorkspaceRoles(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*GetRolesResponseDTO, error) {
	if !s.permissionService.HasPermission(user.ID, workspaceID, PermissionRolesManage) {
		return nil, errors.New("insufficient permissions to manage roles")
	}

	roles, err := s.roleRepository.GetWorkspaceRoles(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace roles: %w", err)
	}

	return &GetRolesResponseDTO{Roles: roles}, nil
}

func (s *RoleService) CreateRole(
	workspaceID uuid.UUID,
	request *SaveRoleRequestDTO,
	user *users_models.User,
) (*Role, error) {
	if !s.permissionService.HasPermission(user.ID, workspaceID, PermissionRolesManage) {
		return nil, errors.New("insufficient permissions to manage roles")
	}

	role := &Role{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Name:        request.Name,
		Description: request.Description,
		Permissions: pq.StringArray(request.Permissions),
	}

	if err := role.Validate(); err != nil {
		return nil, err
	}

	if err := s.roleRepository.CreateRole(role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Role created: %s", role.Name),
		&user.ID,
		&workspaceID,
	)

	return role, nil
}

func (s *RoleService) UpdateRole(
	roleID uuid.UUID,
	request *SaveRoleRequestDTO,
	user *users_models.User,
) (*Role, error) {
	role, err := s.roleRepository.GetRoleByID(roleID)
	if err != nil {
		return nil, err
	}

	if !s.permissionService.HasPermission(user.ID, role.WorkspaceID, PermissionRolesManage) {
		return nil, errors.New("insufficient permissions to manage roles")
	}

	if role.IsSystemRole {
		return nil, errors.New("system roles cannot be modified")
	}

	role.Name = request.Name
	role.Description = request.Description
	role.Permissions = pq.StringArray(request.Permissions)

	if err := role.Validate(); err != nil {
		return nil, err
	}

	if err := s.roleRepository.UpdateRole(role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Role updated: %s", role.Name),
		&user.ID,
		&role.WorkspaceID,
	)

	return role, nil
}

func (s *RoleService) DeleteRole(roleID uuid.UUID, user *users_models.User) error {
	role, err := s.roleRepository.GetRoleByID(roleID)
	if err != nil {
		return err
	}

	if !s.permissionService.HasPermission(user.ID, role.WorkspaceID, PermissionRolesManage) {
		return errors.New("insufficient permissions to manage roles")
	}

	if role.IsSystemRole {
		return errors.New("system roles cannot be deleted")
	}

	if err := s.roleRepository.DeleteRole(roleID); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Role deleted: %s", role.Name),
		&user.ID,
		&role.WorkspaceID,
	)

	return nil
}
