package assistants

import (
	"errors"
	"net/http"
	"strings"

	users_middleware "chathub-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssistantController struct {
	assistantService *AssistantService
}

func (c *AssistantController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/workspaces/:id/assistants", c.CreateAssistant)
	router.GET("/workspaces/:id/assistants", c.GetWorkspaceAssistants)
	router.PUT("/assistants/:id", c.UpdateAssistant)
	router.DELETE("/assistants/:id", c.DeleteAssistant)
}

// CreateAssistant
// @Summary Create an assistant
// @Tags assistants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Param request body SaveAssistantRequestDTO true "Assistant data"
// @Success 200 {object} Assistant
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{id}/assistants [post]
func (c *AssistantController) CreateAssistant(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	var request SaveAssistantRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	assistant, err := c.assistantService.CreateAssistant(workspaceID, &request, user)
	if err != nil {
		respondAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, assistant)
}

// GetWorkspaceAssistants
// @Summary List workspace assistants
// @Tags assistants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Success 200 {object} GetAssistantsResponseDTO
// @Failure 403 {object} map[string]string
// @Router /workspaces/{id}/assistants [get]
func (c *AssistantController) GetWorkspaceAssistants(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	response, err := c.assistantService.GetWorkspaceAssistants(workspaceID, user)
	if err != nil {
		respondAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateAssistant
// @Summary Update an assistant
// @Tags assistants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assistant ID"
// @Param request body SaveAssistantRequestDTO true "Assistant data"
// @Success 200 {object} Assistant
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /assistants/{id} [put]
func (c *AssistantController) UpdateAssistant(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	assistantID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assistant ID"})
		return
	}

	var request SaveAssistantRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	assistant, err := c.assistantService.UpdateAssistant(assistantID, &request, user)
	if err != nil {
		respondAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, assistant)
}

// DeleteAssistant
// @Summary Delete an assistant
// @Tags assistants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assistant ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /assistants/{id} [delete]
func (c *AssistantController) DeleteAssistant(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	assistantID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assistant ID"})
		return
	}

	if err := c.assistantService.DeleteAssistant(assistantID, user); err != nil {
		respondAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Assistant deleted successfully"})
}

func respondAssistantError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Assistant not found"})
	case strings.Contains(err.Error(), "insufficient permissions"):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case strings.Contains(err.Error(), "is required"),
		strings.Contains(err.Error(), "temperature"):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
