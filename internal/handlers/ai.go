package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"studyhive/internal/services"

	"github.com/gin-gonic/gin"
)

type AIHandler struct{}

func NewAIHandler() *AIHandler {
	return &AIHandler{}
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

// Ask relays a prompt to the upstream completion service. Stateless:
// nothing is stored and no conversation memory exists across calls.
func (h *AIHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	text, err := services.GetLLMService().Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			c.JSON(http.StatusInternalServerError, gin.H{"error": services.ErrMissingCredentials.Error()})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusInternalServerError, gin.H{"error": services.ErrInvalidCredentials.Error()})
		default:
			slog.Error("AI request failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate response"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": text})
}
