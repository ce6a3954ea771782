package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aircloud/supportbot/internal/domain"
	"github.com/aircloud/supportbot/internal/service"
)

// Handler handles the public chat API.
type Handler struct {
	chatService *service.ChatService
}

// NewHandler creates a new chat handler
func NewHandler(chatService *service.ChatService) *Handler {
	return &Handler{chatService: chatService}
}

// RegisterRoutes registers chat routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)
}

// Chat handles a chat message from the widget. Provider and store failures
// surface as a generic 500 so provider internals never reach the caller.
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"reply": "Error: No message."})
		return
	}

	resp, err := h.chatService.Chat(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"reply": "Error: No message."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"reply": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
