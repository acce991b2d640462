package handlers

import (
	"net/http"

	apperrors "effi-track-backend/internal/errors"
	"effi-track-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler proxies assistant conversations to the configured chat backend
type ChatHandler struct {
	chatService service.ChatServiceInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService service.ChatServiceInterface) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ChatRequest is the conversation payload forwarded to the chat backend
type ChatRequest struct {
	Messages []service.ChatMessage `json:"messages" binding:"required,min=1"`
}

// ChatResponse carries the assistant's reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Complete handles POST /chat
// @Summary Forward a conversation to the AI assistant
// @Description Proxies the message history to the configured chat completion backend
// @Description and returns the assistant's reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Conversation history"
// @Success 200 {object} ChatResponse "Assistant reply"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Chat backend not configured or unreachable"
// @Router /chat [post]
func (h *ChatHandler) Complete(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	reply, err := h.chatService.Complete(c.Request.Context(), req.Messages)
	if err != nil {
		if apperrors.IsConfiguration(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get assistant reply"})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
