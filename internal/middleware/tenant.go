package middleware

import (
	"net/http"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// RequireTenant rejects requests that carry no organization. It must run
// after the authentication middleware and applies to reads and writes alike.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCompanyIDFromContext(c); !ok {
			GetLoggerFromContext(c).Warn("Request rejected without organization")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrNoTenantSelected.Error()})
			return
		}
		c.Next()
	}
}
