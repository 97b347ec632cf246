package handlers

import (
	"net/http"

	"lawbandhu-backend/service"

	"github.com/gin-gonic/gin"
)

// AssistantHandler handles HTTP requests for the legal assistant
type AssistantHandler struct {
	assistant *service.AssistantService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistant *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// QueryRequest represents the request body for the assistant endpoints
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// Classify handles POST /api/assistant/classify
func (h *AssistantHandler) Classify(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	respond(c, http.StatusOK, h.assistant.Classify(req.Query))
}

// Ask handles POST /api/assistant/ask
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	answer, err := h.assistant.Ask(c.Request.Context(), service.AskRequest{Query: req.Query})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, answer)
}
