package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves a bearer token to the email it belongs to.
type TokenVerifier func(ctx context.Context, token string) (string, error)

// RequireIdentity refuses to render or mutate data for anyone but the
// allowed identity. The identity itself is an external concern; all this
// middleware knows is the resolved email. An empty allowedEmail disables
// the gate for local development.
func RequireIdentity(allowedEmail string, verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if allowedEmail == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: missing bearer token"})
			return
		}

		email, err := verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}
		if !strings.EqualFold(email, allowedEmail) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: only " + allowedEmail + " is allowed"})
			return
		}
		c.Next()
	}
}
