package users_controllers

import (
	"chathub-backend/internal/features/usage"
	users_services "chathub-backend/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	users_services.GetUserService(),
	rate.NewLimiter(rate.Limit(3), 3), // 3 rps with 3 burst
}

var managementController = &ManagementController{
	users_services.GetUserService(),
	usage.GetUsageService(),
}

func GetUserController() *UserController {
	return userController
}

func GetManagementController() *ManagementController {
	return managementController
}
