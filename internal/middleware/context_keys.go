package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey namespaces values stored on the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	// userIDKey is the key used to store the authenticated user's ID.
	userIDKey = contextKey("userID")
	// companyIDKey is the key used to store the resolved organization (tenant) ID.
	companyIDKey = contextKey("companyID")
	// authMethodKey records which credential authenticated the request.
	authMethodKey = contextKey("authMethod")
)

// WithIdentity returns a copy of ctx carrying the caller's user and organization IDs.
func WithIdentity(ctx context.Context, userID, companyID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, companyIDKey, companyID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userIDKey)
}

// GetCompanyIDFromContext retrieves the caller's organization ID. An empty
// value is reported as not found.
func GetCompanyIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, companyIDKey)
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	if val, exists := c.Get(string(key)); exists {
		s, ok := val.(string)
		return s, ok && s != ""
	}
	// check in the request context as well
	if val, ok := c.Request.Context().Value(key).(string); ok && val != "" {
		return val, true
	}
	return "", false
}
