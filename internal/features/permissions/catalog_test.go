package permissions

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func Test_AllPermissions_ReturnsCopy(t *testing.T) {
	first := AllPermissions()
	first[0] = Permission("tampered")

	second := AllPermissions()
	assert.Equal(t, PermissionTeamView, second[0])
}

func Test_IsKnownPermission(t *testing.T) {
	assert.True(t, IsKnownPermission(PermissionChatsWrite))
	assert.False(t, IsKnownPermission(Permission("chats.delete")))
	assert.False(t, IsKnownPermission(Permission("")))
}

func Test_RoleValidate_UnknownPermission_Rejected(t *testing.T) {
	role := &Role{
		ID:          uuid.New(),
		WorkspaceID: uuid.New(),
		Name:        "editor",
		Permissions: pq.StringArray{"workspace.read", "not.a.permission"},
	}

	err := role.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not.a.permission")
}

func Test_RoleValidate_EmptyName_Rejected(t *testing.T) {
	role := &Role{
		ID:          uuid.New(),
		WorkspaceID: uuid.New(),
		Name:        "",
		Permissions: pq.StringArray{"workspace.read"},
	}

	assert.Error(t, role.Validate())
}

func Test_SystemRoleDefinitions_OnlyKnownPermissions(t *testing.T) {
	for _, definition := range systemRoleDefinitions {
		for _, permission := range definition.permissions {
			assert.True(t, IsKnownPermission(permission),
				"role %s carries unknown permission %s", definition.name, permission)
		}
	}
}

func Test_SystemRoleDefinitions_OwnerHoldsFullCatalog(t *testing.T) {
	assert.Equal(t, "owner", systemRoleDefinitions[0].name)
	assert.ElementsMatch(t, AllPermissions(), systemRoleDefinitions[0].permissions)
}
