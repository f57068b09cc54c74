package middleware

import (
	"log/slog"

	"github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// APITokenAuth is a middleware that authenticates requests using organization
// API keys sent in the x-api-key header. Requests without a valid key fall
// through to the JWT middleware.
func APITokenAuth(tokenSvc services.APITokenSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("x-api-key")
		if apiKey == "" {
			c.Next() // No api key provided, let it continue
			return
		}

		token, err := tokenSvc.ValidateToken(c.Request.Context(), apiKey)
		if err != nil {
			GetLoggerFromContext(c).Warn("API key rejected", slog.String("error", err.Error()))
			c.Next() // Token validation failed, let it continue
			return
		}

		// Key is valid, act as its creator inside its organization and skip JWT auth
		setIdentity(c, token.CreatedBy, token.CompanyID, "api_token")
		c.Next()
	}
}
