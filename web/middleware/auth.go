package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/starrep/starrep/web/service"
	"github.com/starrep/starrep/web/session"
)

const bearerPrefix = "Bearer "

// TokenAuth gates protected routes behind a bearer token. A missing header
// and a bad token produce distinct 401 messages; on success the decoded
// identity is attached to the request context.
func TokenAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		claims, err := authService.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		session.SetIdentity(c, &session.Identity{
			Id:    claims.Id,
			Email: claims.Email,
		})
		c.Next()
	}
}
