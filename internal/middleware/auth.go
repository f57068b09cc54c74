package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity token claims the API relies on. The subject is the
// user; OrgID is the organization selected in the identity provider.
type Claims struct {
	jwt.RegisteredClaims
	OrgID string `json:"org_id,omitempty"`
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
// When issuer is non-empty the token's iss claim must match it.
func AuthMiddleware(jwtSecret string, issuer string) gin.HandlerFunc {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(issuer))
	}

	return func(c *gin.Context) {
		// Retrieve logger from the standard context
		logger := GetLoggerFromCtx(c.Request.Context())
		// if auth is already done, skip this middleware
		if authMethod, exists := c.Get(string(authMethodKey)); exists {
			logger.Debug("Auth already done", "authMethod", authMethod)
			c.Next()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		// Parse and validate the token
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		}, parserOpts...)

		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if !token.Valid || claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		setIdentity(c, claims.Subject, claims.OrgID, "jwt")
		c.Next()
	}
}

// setIdentity stores the caller on both the Gin and the standard context and
// enriches the request logger with it.
func setIdentity(c *gin.Context, userID, companyID, method string) {
	ctx := WithIdentity(c.Request.Context(), userID, companyID)
	enriched := GetLoggerFromCtx(ctx).With(
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
	)
	c.Request = c.Request.WithContext(WithLogger(ctx, enriched))

	c.Set(string(userIDKey), userID)
	c.Set(string(companyIDKey), companyID)
	c.Set(string(authMethodKey), method)
}
