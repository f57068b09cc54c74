package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/utils"
	"github.com/google/uuid"
)

// TokenPrefix marks organization API keys. A key reads tok_<id>.<secret>;
// only a bcrypt hash of the secret is stored.
const TokenPrefix = "tok_"

const tokenSecretBytes = 32

var errInvalidToken = fmt.Errorf("%w: invalid api key", apperrors.ErrUnauthorized)

// apiTokenService implements the APITokenSvc interface
type apiTokenService struct {
	BaseService
	tokenRepo repositories.APITokenRepository
}

// NewAPITokenService creates a new instance of apiTokenService
func NewAPITokenService(tokenRepo repositories.APITokenRepository, opts ...Option) portssvc.APITokenSvc {
	return &apiTokenService{
		BaseService: newBaseService(opts),
		tokenRepo:   tokenRepo,
	}
}

var _ portssvc.APITokenSvc = (*apiTokenService)(nil)

// CreateToken generates a new API key for the organization
func (s *apiTokenService) CreateToken(ctx context.Context, companyID, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return "", nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, fmt.Errorf("%w: token name is required", apperrors.ErrValidation)
	}
	if expiresIn != nil && *expiresIn <= 0 {
		return "", nil, fmt.Errorf("%w: expiry must be positive", apperrors.ErrValidation)
	}

	secret, err := utils.GenerateSecureRandomString(tokenSecretBytes)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	hash, err := utils.HashSecret(secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash token: %w", err)
	}

	now := s.Now()
	token := &domain.APIToken{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		CreatedBy: userID,
		Name:      name,
		TokenHash: hash,
		CreatedAt: now,
	}
	if expiresIn != nil {
		expiry := now.Add(*expiresIn)
		token.ExpiresAt = &expiry
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		s.LogError(ctx, err, "Failed to save api token")
		return "", nil, err
	}

	s.LogInfo(ctx, "API token created", slog.String("token_id", token.ID), slog.String("company_id", companyID))
	return TokenPrefix + token.ID + "." + secret, token, nil
}

// ListTokens returns the organization's active keys
func (s *apiTokenService) ListTokens(ctx context.Context, companyID string) ([]domain.APIToken, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	tokens, err := s.tokenRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list api tokens")
		return nil, err
	}
	if tokens == nil {
		return []domain.APIToken{}, nil
	}
	return tokens, nil
}

// RevokeToken revokes one of the organization's keys
func (s *apiTokenService) RevokeToken(ctx context.Context, companyID, userID, tokenID string) error {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return err
	}
	token, err := s.tokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find api token", slog.String("token_id", tokenID))
		return err
	}
	if err := s.CheckOwner(ctx, companyID, token.CompanyID, "api token", tokenID); err != nil {
		return err
	}
	if token.IsRevoked() {
		return nil
	}
	if err := s.tokenRepo.Revoke(ctx, tokenID, s.Now()); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to revoke api token", slog.String("token_id", tokenID))
		return err
	}

	s.LogInfo(ctx, "API token revoked", slog.String("token_id", tokenID), slog.String("user_id", userID))
	return nil
}

// ValidateToken checks a presented key and returns its record. Every failure
// reads as ErrUnauthorized so callers cannot probe which keys exist.
func (s *apiTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.APIToken, error) {
	id, secret, ok := splitToken(tokenString)
	if !ok {
		return nil, errInvalidToken
	}

	token, err := s.tokenRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errInvalidToken
		}
		s.LogError(ctx, err, "Failed to load api token", slog.String("token_id", id))
		return nil, err
	}
	now := s.Now()
	if token.IsRevoked() || (token.ExpiresAt != nil && !token.ExpiresAt.After(now)) {
		return nil, errInvalidToken
	}
	if !utils.CheckSecretHash(secret, token.TokenHash) {
		return nil, errInvalidToken
	}

	if err := s.tokenRepo.TouchLastUsed(ctx, token.ID, now); err != nil {
		s.LogError(ctx, err, "Failed to record api token use", slog.String("token_id", token.ID))
	} else {
		token.LastUsedAt = &now
	}
	return token, nil
}

// splitToken parses tok_<id>.<secret>.
func splitToken(raw string) (id, secret string, ok bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(raw), TokenPrefix)
	if !found {
		return "", "", false
	}
	id, secret, found = strings.Cut(rest, ".")
	if !found || id == "" || secret == "" {
		return "", "", false
	}
	return id, secret, true
}
