package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/SscSPs/treeservice_ops/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// APITokenHandler handles HTTP requests for the organization's API keys
type APITokenHandler struct {
	tokenSvc services.APITokenSvc
}

// NewAPITokenHandler creates a new APITokenHandler
func NewAPITokenHandler(tokenSvc services.APITokenSvc) *APITokenHandler {
	return &APITokenHandler{
		tokenSvc: tokenSvc,
	}
}

// RegisterAPITokenRoutes registers the API key routes
func RegisterAPITokenRoutes(router *gin.RouterGroup, tokenSvc services.APITokenSvc) {
	handler := NewAPITokenHandler(tokenSvc)

	tokensGroup := router.Group("/api-tokens")
	{
		tokensGroup.POST("", handler.CreateToken)
		tokensGroup.GET("", handler.ListTokens)
		tokensGroup.DELETE("/:id", handler.RevokeToken)
	}
}

// CreateToken handles the creation of a new API key
// @Summary Create a new API key
// @Description Creates an API key for the organization. The key is shown only once upon creation.
// @Description Present it in the x-api-key header to authenticate integrations.
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAPITokenRequest true "Key creation details"
// @Success 201 {object} dto.CreateAPITokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api-tokens [post]
func (h *APITokenHandler) CreateToken(c *gin.Context) {
	creatorUserID, companyID, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CreateAPITokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body", err)
		return
	}

	var expiresIn *time.Duration
	if req.ExpiresInDays != nil {
		d := time.Duration(*req.ExpiresInDays) * 24 * time.Hour
		expiresIn = &d
	}

	tokenStr, token, err := h.tokenSvc.CreateToken(c.Request.Context(), companyID, creatorUserID, req.Name, expiresIn)
	if err != nil {
		respondError(c, err, "Failed to create token")
		return
	}
	middleware.GetLoggerFromContext(c).Info("API key created", slog.String("token_id", token.ID))

	c.JSON(http.StatusCreated, dto.CreateAPITokenResponse{
		TokenString: tokenStr,
		Details:     dto.ToAPITokenResponse(token),
	})
}

// ListTokens handles listing the organization's API keys
// @Summary List API keys
// @Description Lists the organization's active API keys. Only metadata is returned, never the secret.
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ListAPITokensResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api-tokens [get]
func (h *APITokenHandler) ListTokens(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}

	tokens, err := h.tokenSvc.ListTokens(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "Failed to list tokens")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAPITokensResponse(tokens))
}

// RevokeToken handles revoking a specific API key
// @Summary Revoke an API key
// @Description Revokes an API key by ID. The key is immediately invalidated.
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param id path string true "Token ID (UUID format)" format(uuid)
// @Success 204 "Token revoked successfully"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api-tokens/{id} [delete]
func (h *APITokenHandler) RevokeToken(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}

	tokenID := c.Param("id")
	if _, err := uuid.Parse(tokenID); err != nil {
		badRequest(c, "token ID", err)
		return
	}

	if err := h.tokenSvc.RevokeToken(c.Request.Context(), companyID, userID, tokenID); err != nil {
		respondError(c, err, "Failed to revoke token")
		return
	}

	c.Status(http.StatusNoContent)
}
