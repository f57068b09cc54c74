package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/SscSPs/treeservice_ops/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden), errors.Is(err, apperrors.ErrNoTenantSelected):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &appErr) && appErr.Code >= 400:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a dto.ErrorResponse. Internal failures are
// logged and replaced by fallback so driver messages never reach clients.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromContext(c)
	status := statusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", msg))
		msg = fallback
	} else {
		logger.Warn("Request failed", slog.Int("status", status), slog.String("error", msg))
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Error:     msg,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	})
}

// badRequest reports a binding failure.
func badRequest(c *gin.Context, what string, err error) {
	middleware.GetLoggerFromContext(c).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:     "Invalid " + what + ": " + err.Error(),
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	})
}

// caller returns the authenticated user and organization. It writes the
// error response itself when either is missing.
func caller(c *gin.Context) (userID, companyID string, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized, "Unauthorized")
		return "", "", false
	}
	companyID, ok = middleware.GetCompanyIDFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrNoTenantSelected, "No organization selected")
		return "", "", false
	}
	return userID, companyID, true
}
