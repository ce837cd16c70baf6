package middleware

import (
	"net/http"

	"github.com/SscSPs/digital_khata_client/internal/core/state"
	"github.com/gin-gonic/gin"
)

// SessionReader exposes the state needed to gate requests.
type SessionReader interface {
	State() state.State
}

// RequireSession rejects requests with 401 while no user is logged in.
func RequireSession(store SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.State().Session.IsAuthenticated {
			GetLoggerFromContext(c).Warn("Rejected request without session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please log in first"})
			return
		}
		c.Next()
	}
}
