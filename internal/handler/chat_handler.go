package handler

import (
	"github.com/Viamapa-Trip-Planner/service-routes/internal/application"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler handles HTTP requests for the route assistant.
type ChatHandler struct {
	chat *application.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chat *application.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// RegisterRoutes registers the chat endpoint on the given router group.
func (h *ChatHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/v1/routes/:id/chat", h.Ask)
}

// Ask handles POST /api/v1/routes/:id/chat.
func (h *ChatHandler) Ask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid route ID")
		return
	}

	var req application.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	answer, err := h.chat.Ask(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"answer": answer})
}
