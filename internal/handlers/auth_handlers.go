package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/polarxpression/batterybuddy-golang/internal/auth"
)

//
// --- Anonymous Sessions ---
//

// CreateAnonymousSession is the handler for POST /v1/auth/anonymous.
// There are no accounts: any client can mint a session and gets a random
// identity plus a signed token for the protected routes.
func (h *Handlers) CreateAnonymousSession(c *gin.Context) {
	sessionID := uuid.NewString()

	token, err := auth.GenerateToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sessionID,
		"token":     token,
	})
}
