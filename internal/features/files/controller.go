package files

import (
	"errors"
	"net/http"
	"strings"

	users_middleware "chathub-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxUploadSizeBytes = 50 * 1024 * 1024

type FileController struct {
	fileService *FileService
}

func (c *FileController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/workspaces/:id/files", c.UploadFile)
	router.GET("/workspaces/:id/files", c.GetWorkspaceAttachments)
	router.GET("/files/:id", c.DownloadFile)
	router.DELETE("/files/:id", c.DeleteFile)
}

// UploadFile
// @Summary Upload a file attachment
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Param file formData file true "File to upload"
// @Success 200 {object} Attachment
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{id}/files [post]
func (c *FileController) UploadFile(ctx *gin.Context) {
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

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	if fileHeader.Size > maxUploadSizeBytes {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer func() {
		_ = file.Close()
	}()

	attachment, err := c.fileService.UploadFile(
		ctx.Request.Context(),
		workspaceID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
		user,
	)
	if err != nil {
		respondFileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, attachment)
}

// GetWorkspaceAttachments
// @Summary List workspace file attachments
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Success 200 {object} GetAttachmentsResponseDTO
// @Failure 403 {object} map[string]string
// @Router /workspaces/{id}/files [get]
func (c *FileController) GetWorkspaceAttachments(ctx *gin.Context) {
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

	response, err := c.fileService.GetWorkspaceAttachments(workspaceID, user)
	if err != nil {
		respondFileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DownloadFile
// @Summary Download a file attachment
// @Tags files
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Attachment ID"
// @Success 200 {file} binary
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /files/{id} [get]
func (c *FileController) DownloadFile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	attachmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment ID"})
		return
	}

	attachment, reader, err := c.fileService.DownloadFile(ctx.Request.Context(), attachmentID, user)
	if err != nil {
		respondFileError(ctx, err)
		return
	}
	defer func() {
		_ = reader.Close()
	}()

	ctx.Header("Content-Disposition", `attachment; filename="`+attachment.FileName+`"`)
	ctx.DataFromReader(
		http.StatusOK,
		attachment.SizeBytes,
		attachment.ContentType,
		reader,
		nil,
	)
}

// DeleteFile
// @Summary Delete a file attachment
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attachment ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /files/{id} [delete]
func (c *FileController) DeleteFile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	attachmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment ID"})
		return
	}

	if err := c.fileService.DeleteFile(ctx.Request.Context(), attachmentID, user); err != nil {
		respondFileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

func respondFileError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
	case strings.Contains(err.Error(), "insufficient permissions"):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
