package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/types"
)

// TokenValidator is an interface for validating bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that validates bearer tokens. All
// failure modes (missing header, bad token, unknown user) produce the same
// 401 body; the specific reason is only logged.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Printf("[Auth] missing authorization header for %s", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Printf("[Auth] malformed authorization header for %s", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			log.Printf("[Auth] token rejected: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
