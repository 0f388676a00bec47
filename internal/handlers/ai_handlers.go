package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatInput defines the structure of the JSON request body.
type ChatInput struct {
	Message string `json:"message" binding:"required"`
	Model   string `json:"model"`
}

// ChatAI answers stock questions via the Gemini-backed assistant.
// POST /v1/ai/chat
func (h *Handlers) ChatAI(c *gin.Context) {
	// The assistant is optional; without an API key the endpoint is off.
	if h.AIService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI assistant is not configured"})
		return
	}

	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, tokensUsed, err := h.AIService.GenerateResponse(c.Request.Context(), input.Message, input.Model)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI Service unavailable: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":   response,
		"tokensUsed": tokensUsed,
	})
}
