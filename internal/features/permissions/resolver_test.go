package permissions

import (
	"errors"
	"testing"

	"chathub-backend/internal/features/teams"
	workspaces_models "chathub-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeWorkspaceSource struct {
	workspace *workspaces_models.Workspace
	err       error
}

func (f *fakeWorkspaceSource) GetWorkspaceByID(uuid.UUID) (*workspaces_models.Workspace, error) {
	return f.workspace, f.err
}

type fakeMembershipSource struct {
	memberships []*teams.TeamMembership
	err         error
}

func (f *fakeMembershipSource) GetUserMemberships(uuid.UUID, uuid.UUID) ([]*teams.TeamMembership, error) {
	return f.memberships, f.err
}

type fakeRoleSource struct {
	roles          []*Role
	err            error
	requestedNames []string
}

func (f *fakeRoleSource) GetWorkspaceRolesByNames(
	_ uuid.UUID,
	names []string,
) ([]*Role, error) {
	f.requestedNames = names
	return f.roles, f.err
}

func Test_ResolvePermissions_Owner_ReceivesFullCatalog(t *testing.T) {
	ownerID := uuid.New()
	workspaceID := uuid.New()

	service := NewPermissionService(
		&fakeWorkspaceSource{workspace: &workspaces_models.Workspace{
			ID:      workspaceID,
			OwnerID: ownerID,
		}},
		&fakeMembershipSource{},
		&fakeRoleSource{},
	)

	resolved, err := service.ResolvePermissions(ownerID, workspaceID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, AllPermissions(), resolved)
}

func Test_ResolvePermissions_PrivateWorkspaceNonOwner_ReceivesNothing(t *testing.T) {
	workspaceID := uuid.New()

	service := NewPermissionService(
		&fakeWorkspaceSource{workspace: &workspaces_models.Workspace{
			ID:      workspaceID,
			OwnerID: uuid.New(),
			TeamID:  nil,
		}},
		&fakeMembershipSource{},
		&fakeRoleSource{},
	)

	resolved, err := service.ResolvePermissions(uuid.New(), workspaceID)
	assert.NoError(t, err)
	assert.Empty(t, resolved)
}

func Test_ResolvePermissions_TeamWorkspaceNonMember_ReceivesNothing(t *testing.T) {
	workspaceID := uuid.New()
	teamID := uuid.New()

	roleSource := &fakeRoleSource{}
	service := NewPermissionService(
		&fakeWorkspaceSource{workspace: &workspaces_models.Workspace{
			ID:      workspaceID,
			OwnerID: uuid.New(),
			TeamID:  &teamID,
		}},
		&fakeMembershipSource{memberships: []*teams.TeamMembership{}},
		roleSource,
	)

	resolved, err := service.ResolvePermissions(uuid.New(), workspaceID)
	assert.NoError(t, err)
	assert.Empty(t, resolved)
	assert.Nil(t, roleSource.requestedNames)
}

func Test_ResolvePermissions_MemberRoles_UnionAcrossMatchingRows(t *testing.T) {
	workspaceID := uuid.New()
	teamID := uuid.New()

	service := NewPermissionService(
		&fakeWorkspaceSource{workspace: &workspaces_models.Workspace{
			ID:      workspaceID,
			OwnerID: uuid.New(),
			TeamID:  &teamID,
		}},
		&fakeMembershipSource{memberships: []*teams.TeamMembership{
			{Role: "member"},
			{Role: "reviewer"},
		}},
		&fakeRoleSource{roles: []*Role{
			{Name: "member", Permissions: []string{"workspace.read", "chats.read"}},
			{Name: "reviewer", Permissions: []string{"chats.read", "chats.write"}},
		}},
	)

	resolved, err := service.ResolvePermissions(uuid.New(), workspaceID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []Permission{
		PermissionChatsRead,
		PermissionChatsWrite,
		PermissionWorkspaceRead,
	}, resolved)
}

// A membership role string with no matching role row contributes nothing,
// it does not fail resolution.
func Test_ResolvePermissions_UnknownRoleName_SilentlyIgnored(t *testing.T) {
	workspaceID := uuid.New()
	teamID := uuid.New()

	service := NewPermissionService(
		&fakeWorkspaceSource{workspace: &workspaces_models.Workspace{
			ID:      workspaceID,
			OwnerID: uuid.New(),
			TeamID:  &teamID,
		}},
		&fakeMembershipSource{memberships: []*teams.TeamMembership{
			{Role: "ghost-role"},
		}},
		&fakeRoleSource{roles: []*Role{}},
	)

	resolved, err := service.ResolvePermissions(uuid.New(), workspaceID)
	assert.NoError(t, err)
	assert.Empty(t, resolved)
}

// Holding a role literally named "owner" grants only what that role row
// lists. The implicit full catalog belongs to the workspace owner alone.
func Test_ResolvePermissions_OwnerRoleName_DoesNotGrantCatalog(t *testing.T) {
	workspaceID := uuid.New()
	teamID := uuid.New()

	service := NewPermissionService(
		&fakeWorkspaceSource{workspace: &workspaces_models.Workspace{
			ID:      workspaceID,
			OwnerID: uuid.New(),
			TeamID:  &teamID,
		}},
		&fakeMembershipSource{memberships: []*teams.TeamMembership{
			{Role: "owner"},
		}},
		&fakeRoleSource{roles: []*Role{
			{Name: "owner", Permissions: []string{"workspace.read"}},
		}},
	)

	resolved, err := service.ResolvePermissions(uuid.New(), workspaceID)
	assert.NoError(t, err)
	assert.Equal(t, []Permission{PermissionWorkspaceRead}, resolved)
}

func Test_ResolvePermissions_DuplicateMembershipRoles_QueriedOnce(t *testing.T) {
	workspaceID := uuid.New()
	teamID := uuid.New()

	roleSource := &fakeRoleSource{roles: []*Role{
		{Name: "member", Permissions: []string{"workspace.read"}},
	}}
	service := NewPermissionService(
		&fakeWorkspaceSource{workspace: &workspaces_models.Workspace{
			ID:      workspaceID,
			OwnerID: uuid.New(),
			TeamID:  &teamID,
		}},
		&fakeMembershipSource{memberships: []*teams.TeamMembership{
			{Role: "member"},
			{Role: "member"},
		}},
		roleSource,
	)

	_, err := service.ResolvePermissions(uuid.New(), workspaceID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"member"}, roleSource.requestedNames)
}

func Test_HasPermission_ResolutionError_Denies(t *testing.T) {
	service := NewPermissionService(
		&fakeWorkspaceSource{err: errors.New("connection refused")},
		&fakeMembershipSource{},
		&fakeRoleSource{},
	)

	granted := service.HasPermission(uuid.New(), uuid.New(), PermissionWorkspaceRead)
	assert.False(t, granted)
}

func Test_HasPermission_OwnerHoldsEveryPermission(t *testing.T) {
	ownerID := uuid.New()
	workspaceID := uuid.New()

	service := NewPermissionService(
		&fakeWorkspaceSource{workspace: &workspaces_models.Workspace{
			ID:      workspaceID,
			OwnerID: ownerID,
		}},
		&fakeMembershipSource{},
		&fakeRoleSource{},
	)

	for _, permission := range AllPermissions() {
		assert.True(t, service.HasPermission(ownerID, workspaceID, permission))
	}
}

func Test_UnionRolePermissions_DuplicateRows_CountedOnce(t *testing.T) {
	result := UnionRolePermissions([]*Role{
		{Name: "editor", Permissions: []string{"chats.write", "chats.read"}},
		{Name: "editor", Permissions: []string{"chats.write"}},
	})

	assert.Equal(t, []Permission{PermissionChatsRead, PermissionChatsWrite}, result)
}

func Test_UnionRolePermissions_NoRoles_ReturnsEmptySet(t *testing.T) {
	result := UnionRolePermissions(nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
