package middleware

import (
	"net/http"
	"strings"

	"artistry/config"
	"artistry/internal/auth"

	"github.com/gin-gonic/gin"
)

// AdminRequired validates the Bearer token issued at login. Every mutating
// catalog route and the whole admin surface sits behind this.
func AdminRequired(cfg *config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		claims, err := auth.ParseAdminToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("role", claims.Role)
		c.Next()
	}
}
