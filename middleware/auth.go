package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyAuth rejects any request whose X-API-Key header does not match the
// configured secret. There are no sessions and no per-user identity, one
// shared secret covers the whole service; a match only sets an opaque
// authenticated marker on the context.
func APIKeyAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" || key != secret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid API Key."})
			return
		}
		c.Set("user", "authenticated_user")
		c.Next()
	}
}
