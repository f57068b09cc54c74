package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// now is the service clock. Tests replace it to get stable timestamps.
	now func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.now != nil {
		return s.now().UTC()
	}
	return time.Now().UTC()
}

// RequireTenant fails closed when no organization was resolved for the caller.
func (s *BaseService) RequireTenant(ctx context.Context, companyID string) error {
	if companyID == "" {
		s.LogDebug(ctx, "Operation rejected without organization")
		return apperrors.ErrNoTenantSelected
	}
	return nil
}

// CheckOwner returns ErrForbidden when a record of another organization was
// addressed. The message never describes the record.
func (s *BaseService) CheckOwner(ctx context.Context, companyID, ownerCompanyID, entity, id string) error {
	if ownerCompanyID != companyID {
		s.LogDebug(ctx, "Cross-organization access rejected",
			slog.String("entity", entity),
			slog.String("entity_id", id),
			slog.String("company_id", companyID))
		return fmt.Errorf("%w: %s is not accessible", apperrors.ErrForbidden, entity)
	}
	return nil
}

// logUnlessExpected logs err unless it is one of the sentinel errors that a
// handler turns into a client response.
func (s *BaseService) logUnlessExpected(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrForbidden) ||
		errors.Is(err, apperrors.ErrNoTenantSelected) {
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// Option is a functional option shared by the service constructors.
type Option func(*BaseService)

// WithClock replaces the clock used to stamp audit fields and timers.
func WithClock(now func() time.Time) Option {
	return func(s *BaseService) {
		s.now = now
	}
}

func newBaseService(opts []Option) BaseService {
	var b BaseService
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
