package users_controllers

import (
	"net/http"
	"time"

	"chathub-backend/internal/features/usage"
	users_enums "chathub-backend/internal/features/users/enums"
	users_middleware "chathub-backend/internal/features/users/middleware"
	users_services "chathub-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserAnalyticsDTO struct {
	ID                uuid.UUID              `json:"id"`
	Email             string                 `json:"email"`
	Name              string                 `json:"name"`
	Role              users_enums.UserRole   `json:"role"`
	Status            users_enums.UserStatus `json:"status"`
	CreatedAt         time.Time              `json:"createdAt"`
	MonthlyTokensUsed int64                  `json:"monthlyTokensUsed"`
}

type ListUsersResponseDTO struct {
	Users []UserAnalyticsDTO `json:"users"`
}

// ManagementController serves the admin user listing with current-month
// token analytics.
type ManagementController struct {
	userService  *users_services.UserService
	usageService *usage.UsageService
}

func (c *ManagementController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/users", c.ListUsers)
}

// ListUsers
// @Summary List users with token usage analytics
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListUsersResponseDTO
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (c *ManagementController) ListUsers(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if user.Role != users_enums.UserRoleAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	allUsers, err := c.userService.GetAllUsers()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totals, err := c.usageService.GetMonthlyTotalsByUser()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	usersList := make([]UserAnalyticsDTO, len(allUsers))
	for i, u := range allUsers {
		usersList[i] = UserAnalyticsDTO{
			ID:                u.ID,
			Email:             u.Email,
			Name:              u.Name,
			Role:              u.Role,
			Status:            u.Status,
			CreatedAt:         u.CreatedAt,
			MonthlyTokensUsed: totals[u.ID],
		}
	}

	ctx.JSON(http.StatusOK, ListUsersResponseDTO{Users: usersList})
}
