package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"main/internal/auth"
)

// UserIDKey is the gin context key holding the verified token subject.
const UserIDKey = "userID"

// Auth protects routes that require a valid bearer token.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication required"})
			return
		}

		userID, err := auth.VerifyToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication required"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
