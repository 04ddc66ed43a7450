package users_services

import (
	"chathub-backend/internal/features/encryption/secrets"
	users_interfaces "chathub-backend/internal/features/users/interfaces"
	users_repositories "chathub-backend/internal/features/users/repositories"
)

var userService = &UserService{
	users_repositories.GetUserRepository(),
	secrets.GetSecretKeyService(),
	nil,
	[]users_interfaces.UserSignUpListener{},
}

func GetUserService() *UserService {
	return userService
}
