package teams

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_TeamMembershipValidate_ValidMembership(t *testing.T) {
	membership := &TeamMembership{
		TeamID: uuid.New(),
		UserID: uuid.New(),
		Role:   "member",
	}

	assert.NoError(t, membership.Validate())
}

func Test_TeamMembershipValidate_MissingFields_Rejected(t *testing.T) {
	missingTeam := &TeamMembership{UserID: uuid.New(), Role: "member"}
	assert.Error(t, missingTeam.Validate())

	missingUser := &TeamMembership{TeamID: uuid.New(), Role: "member"}
	assert.Error(t, missingUser.Validate())

	missingRole := &TeamMembership{TeamID: uuid.New(), UserID: uuid.New()}
	assert.Error(t, missingRole.Validate())
}

// Free-form role names are accepted; only the empty string is invalid.
// They resolve against workspace role rows at permission time, so an
// unknown name is a valid membership that grants nothing.
func Test_TeamMembershipValidate_FreeFormRoleNames_Accepted(t *testing.T) {
	membership := &TeamMembership{
		TeamID: uuid.New(),
		UserID: uuid.New(),
		Role:   "night-shift-reviewer",
	}

	assert.NoError(t, membership.Validate())
}
