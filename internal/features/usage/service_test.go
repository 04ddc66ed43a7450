package usage

import (
	"testing"

	users_enums "chathub-backend/internal/features/users/enums"
	users_models "chathub-backend/internal/features/users/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// The permission gates run before any repository access, so the denial
// paths are testable on a zero-value service.

func Test_GetLimits_NonAdmin_Forbidden(t *testing.T) {
	service := &UsageService{}
	member := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleMember}

	_, err := service.GetLimits("", member)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient permissions")
}

func Test_SaveLimit_NonAdmin_Forbidden(t *testing.T) {
	service := &UsageService{}
	member := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleMember}

	_, err := service.SaveLimit(
		&SaveLimitRequestDTO{Type: LimitTypeProvider, Target: "openai", UsageLimit: 100},
		member,
	)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient permissions")
}

func Test_DeleteLimit_NonAdmin_Forbidden(t *testing.T) {
	service := &UsageService{}
	member := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleMember}

	err := service.DeleteLimit(uuid.New(), member)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient permissions")
}
