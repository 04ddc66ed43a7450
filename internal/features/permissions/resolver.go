package permissions

import (
	"fmt"
	"sort"

	"chathub-backend/internal/features/teams"
	workspaces_models "chathub-backend/internal/features/workspaces/models"
	"chathub-backend/internal/util/logger"

	"github.com/google/uuid"
)

// Data sources the resolver reads from. Narrow interfaces keep the decision
// logic testable without a database.
type WorkspaceSource interface {
	GetWorkspaceByID(workspaceID uuid.UUID) (*workspaces_models.Workspace, error)
}

type MembershipSource interface {
	GetUserMemberships(teamID, userID uuid.UUID) ([]*teams.TeamMembership, error)
}

type RoleSource interface {
	GetWorkspaceRolesByNames(workspaceID uuid.UUID, names []string) ([]*Role, error)
}

type PermissionService struct {
	workspaceSource  WorkspaceSource
	membershipSource MembershipSource
	roleSource       RoleSource
}

func NewPermissionService(
	workspaceSource WorkspaceSource,
	membershipSource MembershipSource,
	roleSource RoleSource,
) *PermissionService {
	return &PermissionService{workspaceSource, membershipSource, roleSource}
}

// ResolvePermissions computes the effective permission set a user holds in
// a workspace. The owner implicitly holds the full catalog without any role
// row. Non-owners in a private workspace hold nothing. Team members hold
// the union of permissions across workspace role rows whose name equals any
// of their team-membership role strings; role names with no matching row
// contribute nothing.
func (s *PermissionService) ResolvePermissions(
	userID, workspaceID uuid.UUID,
) ([]Permission, error) {
	workspace, err := s.workspaceSource.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace.OwnerID == userID {
		return AllPermissions(), nil
	}

	if workspace.TeamID == nil {
		return []Permission{}, nil
	}

	memberships, err := s.membershipSource.GetUserMemberships(*workspace.TeamID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team memberships: %w", err)
	}

	if len(memberships) == 0 {
		return []Permission{}, nil
	}

	roleNames := distinctRoleNames(memberships)

	roles, err := s.roleSource.GetWorkspaceRolesByNames(workspaceID, roleNames)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace roles: %w", err)
	}

	return UnionRolePermissions(roles), nil
}

// HasPermission reports whether the user holds the permission in the
// workspace. Resolution failures deny: a user must never gain access
// because a lookup failed.
func (s *PermissionService) HasPermission(
	userID, workspaceID uuid.UUID,
	permission Permission,
) bool {
	resolved, err := s.ResolvePermissions(userID, workspaceID)
	if err != nil {
		logger.GetLogger().
			Error("permission resolution failed, denying", "error", err, "workspaceId", workspaceID)
		return false
	}

	for _, p := range resolved {
		if p == permission {
			return true
		}
	}

	return false
}

func distinctRoleNames(memberships []*teams.TeamMembership) []string {
	seen := make(map[string]bool, len(memberships))
	names := make([]string, 0, len(memberships))

	for _, membership := range memberships {
		if seen[membership.Role] {
			continue
		}
		seen[membership.Role] = true
		names = append(names, membership.Role)
	}

	return names
}

// UnionRolePermissions collapses the permission arrays of the given role
// rows into a sorted set.
func UnionRolePermissions(roles []*Role) []Permission {
	seen := make(map[Permission]bool)

	for _, role := range roles {
		for _, permission := range role.Permissions {
			seen[Permission(permission)] = true
		}
	}

	result := make([]Permission, 0, len(seen))
	for permission := range seen {
		result = append(result, permission)
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })

	return result
}
