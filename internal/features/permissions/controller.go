package permissions

import (
	"errors"
	"net/http"
	"strings"

	users_middleware "chathub-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleController struct {
	roleService       *RoleService
	permissionService *PermissionService
}

func (c *RoleController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/workspaces/:id/permissions", c.GetMyPermissions)
	router.GET("/workspaces/:id/roles", c.GetWorkspaceRoles)
	router.POST("/workspaces/:id/roles", c.CreateRole)
	router.PUT("/roles/:id", c.UpdateRole)
	router.DELETE("/roles/:id", c.DeleteRole)
}

// GetMyPermissions
// @Summary Get the calling user's effective permissions in a workspace
// @Tags permissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Success 200 {object} GetPermissionsResponseDTO
// @Failure 404 {object} map[string]string
// @Router /workspaces/{id}/permissions [get]
func (c *RoleController) GetMyPermissions(ctx *gin.Context) {
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

	resolved, err := c.permissionService.ResolvePermissions(user.ID, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
			return
		}

		// Resolution failures read as "no permissions" rather than an
		// error page; the UI hides gated elements.
		ctx.JSON(http.StatusOK, GetPermissionsResponseDTO{Permissions: []Permission{}})
		return
	}

	ctx.JSON(http.StatusOK, GetPermissionsResponseDTO{Permissions: resolved})
}

// GetWorkspaceRoles
// @Summary List workspace roles
// @Tags permissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Success 200 {object} GetRolesResponseDTO
// @Failure 403 {object} map[string]string
// @Router /workspaces/{id}/roles [get]
func (c *RoleController) GetWorkspaceRoles(ctx *gin.Context) {
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

	response, err := c.roleService.GetWorkspaceRoles(workspaceID, user)
	if err != nil {
		respondRoleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateRole
// @Summary Create a workspace role
// @Tags permissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Param request body SaveRoleRequestDTO true "Role data"
// @Success 200 {object} Role
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{id}/roles [post]
func (c *RoleController) CreateRole(ctx *gin.Context) {
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

	var request SaveRoleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	role, err := c.roleService.CreateRole(workspaceID, &request, user)
	if err != nil {
		respondRoleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, role)
}

// UpdateRole
// @Summary Update a workspace role
// @Tags permissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Role ID"
// @Param request body SaveRoleRequestDTO true "Role data"
// @Success 200 {object} Role
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /roles/{id} [put]
func (c *RoleController) UpdateRole(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
		return
	}

	var request SaveRoleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	role, err := c.roleService.UpdateRole(roleID, &request, user)
	if err != nil {
		respondRoleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, role)
}

// DeleteRole
// @Summary Delete a workspace role
// @Tags permissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Role ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /roles/{id} [delete]
func (c *RoleController) DeleteRole(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
		return
	}

	if err := c.roleService.DeleteRole(roleID, user); err != nil {
		respondRoleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully"})
}

func respondRoleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
	case strings.Contains(err.Error(), "insufficient permissions"):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case strings.Contains(err.Error(), "system roles"),
		strings.Contains(err.Error(), "unknown permission"),
		strings.Contains(err.Error(), "is required"):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
