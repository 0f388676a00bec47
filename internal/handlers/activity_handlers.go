package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetRecentActivity is the handler for GET /v1/activity.
// The feed is in-process only: it shows this server's recent mutations,
// newest first, capped at 20, and resets on restart.
func (h *Handlers) GetRecentActivity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"activity": h.Activity.Recent(),
	})
}
