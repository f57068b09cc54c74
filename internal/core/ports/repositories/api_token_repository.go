package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// APITokenRepository defines the interface for API token data access operations
type APITokenRepository interface {
	// Create persists a new API token
	Create(ctx context.Context, token *domain.APIToken) error

	// FindByID retrieves an API token by its ID, including revoked ones
	FindByID(ctx context.Context, id string) (*domain.APIToken, error)

	// ListByCompany retrieves the non-revoked tokens of an organization
	ListByCompany(ctx context.Context, companyID string) ([]domain.APIToken, error)

	// TouchLastUsed records the time a token was last presented
	TouchLastUsed(ctx context.Context, id string, usedAt time.Time) error

	// Revoke marks a token as revoked
	Revoke(ctx context.Context, id string, revokedAt time.Time) error
}
