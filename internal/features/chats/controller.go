package chats

import (
	"errors"
	"net/http"
	"strings"

	"chathub-backend/internal/features/providers"
	"chathub-backend/internal/features/usage"
	users_middleware "chathub-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatController struct {
	chatService *ChatService
}

func (c *ChatController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/workspaces/:id/chats", c.CreateChat)
	router.GET("/workspaces/:id/chats", c.GetWorkspaceChats)
	router.GET("/chats/:id", c.GetChat)
	router.DELETE("/chats/:id", c.DeleteChat)
	router.POST("/chats/:id/messages", c.SendMessage)
}

// CreateChat
// @Summary Create a chat in a workspace
// @Tags chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Param request body CreateChatRequestDTO true "Chat data"
// @Success 200 {object} Chat
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{id}/chats [post]
func (c *ChatController) CreateChat(ctx *gin.Context) {
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

	var request CreateChatRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	chat, err := c.chatService.CreateChat(workspaceID, &request, user)
	if err != nil {
		respondChatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, chat)
}

// GetWorkspaceChats
// @Summary List chats in a workspace
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Success 200 {object} GetChatsResponseDTO
// @Failure 403 {object} map[string]string
// @Router /workspaces/{id}/chats [get]
func (c *ChatController) GetWorkspaceChats(ctx *gin.Context) {
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

	response, err := c.chatService.GetWorkspaceChats(workspaceID, user)
	if err != nil {
		respondChatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetChat
// @Summary Get a chat with its messages
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat ID"
// @Success 200 {object} GetChatResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /chats/{id} [get]
func (c *ChatController) GetChat(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	chatID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}

	response, err := c.chatService.GetChat(chatID, user)
	if err != nil {
		respondChatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteChat
// @Summary Delete a chat
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /chats/{id} [delete]
func (c *ChatController) DeleteChat(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	chatID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}

	if err := c.chatService.DeleteChat(chatID, user); err != nil {
		respondChatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Chat deleted successfully"})
}

// SendMessage
// @Summary Send a message and stream the completion
// @Description Streams the assistant response as server-sent events. A
// "delta" event carries each text fragment, "done" carries the persisted
// assistant message, "error" carries a mid-stream failure.
// @Tags chats
// @Accept json
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path string true "Chat ID"
// @Param request body SendMessageRequestDTO true "Message data"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /chats/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	chatID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}

	var request SendMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	streamStarted := false

	// Request context cancellation closes the upstream provider stream
	// when the client aborts.
	assistantMessage, err := c.chatService.SendMessage(
		ctx.Request.Context(),
		chatID,
		&request,
		user,
		func(text string) {
			streamStarted = true
			ctx.SSEvent("delta", text)
			ctx.Writer.Flush()
		},
	)
	if err != nil {
		if streamStarted {
			// Headers are already out; the failure travels as an event.
			ctx.SSEvent("error", err.Error())
			ctx.Writer.Flush()
			return
		}

		respondChatError(ctx, err)
		return
	}

	ctx.SSEvent("done", assistantMessage)
	ctx.Writer.Flush()
}

func respondChatError(ctx *gin.Context, err error) {
	var limitErr *usage.LimitExceededError
	var providerErr *providers.UpstreamProviderError

	switch {
	case errors.As(err, &limitErr):
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": limitErr.Error()})
	case errors.As(err, &providerErr):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": providerErr.Error()})
	case errors.Is(err, providers.ErrProviderNotConfigured):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
	case strings.Contains(err.Error(), "insufficient permissions"):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case strings.Contains(err.Error(), "is required"),
		strings.Contains(err.Error(), "unknown model provider"),
		strings.Contains(err.Error(), "another workspace"):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
