package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/piggypal/piggypal-api/services"
	"github.com/piggypal/piggypal-api/utils"
)

const subjectKey = "auth_subject"

// AuthMiddleware requires a bearer token once the vault passphrase has
// been configured. Before that the vault is open and requests pass
// through.
func AuthMiddleware(vault *services.VaultService) gin.HandlerFunc {
	return func(c *gin.Context) {
		configured, err := vault.Configured(c.Request.Context())
		if err != nil {
			utils.SafeError("Auth check failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}
		if !configured {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			c.Abort()
			return
		}

		subject, err := utils.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(subjectKey, subject)
		c.Next()
	}
}

// GetSubject returns the authenticated subject, empty when the vault is
// open.
func GetSubject(c *gin.Context) string {
	subject, _ := c.Get(subjectKey)
	s, _ := subject.(string)
	return s
}
