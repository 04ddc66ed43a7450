package users_testing

import (
	"time"

	users_dto "chathub-backend/internal/features/users/dto"
	users_enums "chathub-backend/internal/features/users/enums"
	users_models "chathub-backend/internal/features/users/models"
	users_repositories "chathub-backend/internal/features/users/repositories"
	users_services "chathub-backend/internal/features/users/services"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const testUserPassword = "test-password-123"

func CreateTestUser(role users_enums.UserRole) *users_dto.SignInResponseDTO {
	repository := users_repositories.GetUserRepository()

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(testUserPassword),
		bcrypt.DefaultCost,
	)
	if err != nil {
		panic(err)
	}

	hashedPasswordStr := string(hashedPassword)

	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                uuid.New().String() + "@test.local",
		Name:                 "Test User",
		HashedPassword:       &hashedPasswordStr,
		PasswordCreationTime: time.Now().UTC(),
		Role:                 role,
		Status:               users_enums.UserStatusActive,
		CreatedAt:            time.Now().UTC(),
	}

	if err := repository.CreateUser(user); err != nil {
		panic("failed to create test user: " + err.Error())
	}

	tokenResponse, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic("failed to generate test user token: " + err.Error())
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Email:  user.Email,
		Token:  tokenResponse.Token,
	}
}
