package services

import (
	"context"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// APITokenSvc defines operations for organization API keys
type APITokenSvc interface {
	// CreateToken generates a new API key for the organization.
	// Returns the plaintext key (only shown once) and the stored details.
	CreateToken(ctx context.Context, companyID, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error)

	// ListTokens returns the organization's active keys
	ListTokens(ctx context.Context, companyID string) ([]domain.APIToken, error)

	// RevokeToken revokes one of the organization's keys
	RevokeToken(ctx context.Context, companyID, userID, tokenID string) error

	// ValidateToken checks a presented key and returns its record.
	// Updates the last used timestamp if the key is valid.
	ValidateToken(ctx context.Context, tokenString string) (*domain.APIToken, error)
}
