package usage

import (
	"net/http"
	"strings"

	users_middleware "chathub-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UsageController struct {
	usageService *UsageService
}

func (c *UsageController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/usage/limits", c.GetLimits)
	router.POST("/usage/limits", c.SaveLimit)
	router.DELETE("/usage/limits", c.DeleteLimit)
	router.GET("/usage/record", c.GetCurrentMonthUsage)
	router.POST("/usage/record", c.RecordUsage)
}

// GetLimits
// @Summary List usage limits
// @Description Admin only; user-specific limits override global ones for the same target
// @Tags usage
// @Produce json
// @Security BearerAuth
// @Param provider query string false "Filter provider-typed limits"
// @Success 200 {object} GetLimitsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /usage/limits [get]
func (c *UsageController) GetLimits(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.usageService.GetLimits(ctx.Query("provider"), user)
	if err != nil {
		respondUsageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// SaveLimit
// @Summary Create or replace a usage limit
// @Description Upserts by (type, target); admin only
// @Tags usage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveLimitRequestDTO true "Limit data"
// @Success 200 {object} UsageLimit
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /usage/limits [post]
func (c *UsageController) SaveLimit(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request SaveLimitRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	limit, err := c.usageService.SaveLimit(&request, user)
	if err != nil {
		respondUsageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, limit)
}

// DeleteLimit
// @Summary Delete a usage limit
// @Tags usage
// @Produce json
// @Security BearerAuth
// @Param id query string true "Limit ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /usage/limits [delete]
func (c *UsageController) DeleteLimit(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	limitID, err := uuid.Parse(ctx.Query("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit ID"})
		return
	}

	if err := c.usageService.DeleteLimit(limitID, user); err != nil {
		respondUsageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Limit deleted successfully"})
}

// GetCurrentMonthUsage
// @Summary Get the caller's current-month usage aggregated by model
// @Tags usage
// @Produce json
// @Security BearerAuth
// @Success 200 {object} GetUsageResponseDTO
// @Router /usage/record [get]
func (c *UsageController) GetCurrentMonthUsage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.usageService.GetCurrentMonthUsage(user)
	if err != nil {
		respondUsageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RecordUsage
// @Summary Append a token usage record
// @Description Accepts snake_case and camelCase token field names
// @Tags usage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordUsageRequestDTO true "Usage data"
// @Success 200 {object} TokenUsage
// @Failure 400 {object} map[string]string
// @Router /usage/record [post]
func (c *UsageController) RecordUsage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request RecordUsageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	record, err := c.usageService.RecordUsage(&request, user)
	if err != nil {
		respondUsageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}

func respondUsageError(ctx *gin.Context, err error) {
	switch {
	case strings.Contains(err.Error(), "insufficient permissions"):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case strings.Contains(err.Error(), "invalid limit type"),
		strings.Contains(err.Error(), "unrecognized provider"),
		strings.Contains(err.Error(), "is required"),
		strings.Contains(err.Error(), "must be non-negative"):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
