package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	"github.com/SscSPs/treeservice_ops/internal/models"
	"github.com/SscSPs/treeservice_ops/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAPITokenRepository struct {
	BaseRepository
}

// newPgxAPITokenRepository creates a new instance of PgxAPITokenRepository
func newPgxAPITokenRepository(db *pgxpool.Pool) portsrepo.APITokenRepository {
	return &PgxAPITokenRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.APITokenRepository = (*PgxAPITokenRepository)(nil)

const (
	apiTokensTable = "api_tokens"

	selectAPITokenFields = `
		id, company_id, created_by, name, token_hash,
		last_used_at, expires_at, created_at, revoked_at
	`

	insertAPITokenQuery = `
		INSERT INTO ` + apiTokensTable + ` (` + selectAPITokenFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	findAPITokenByIDQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE id = $1
	`

	findAPITokensByCompanyQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE company_id = $1 AND revoked_at IS NULL
		ORDER BY created_at DESC
	`

	touchAPITokenQuery = `
		UPDATE ` + apiTokensTable + `
		SET last_used_at = $2
		WHERE id = $1
	`

	revokeAPITokenQuery = `
		UPDATE ` + apiTokensTable + `
		SET revoked_at = $2
		WHERE id = $1 AND revoked_at IS NULL
	`
)

// Create persists a new API token
func (r *PgxAPITokenRepository) Create(ctx context.Context, token *domain.APIToken) error {
	if token == nil {
		return errors.New("token cannot be nil")
	}

	m := mapping.ToModelAPIToken(*token)
	_, err := r.Pool.Exec(ctx, insertAPITokenQuery,
		m.ID, m.CompanyID, m.CreatedBy, m.Name, m.TokenHash,
		m.LastUsedAt, m.ExpiresAt, m.CreatedAt, m.RevokedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save api token %s: %w", m.ID, err)
	}
	return nil
}

// FindByID retrieves an API token by its ID
func (r *PgxAPITokenRepository) FindByID(ctx context.Context, id string) (*domain.APIToken, error) {
	if id == "" {
		return nil, errors.New("id cannot be empty")
	}

	token, err := scanAPIToken(r.Pool.QueryRow(ctx, findAPITokenByIDQuery, id))
	if err != nil {
		return nil, notFoundOr(err, "api token", id)
	}

	domainToken := mapping.ToDomainAPIToken(*token)
	return &domainToken, nil
}

// ListByCompany retrieves the non-revoked tokens of an organization
func (r *PgxAPITokenRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.APIToken, error) {
	rows, err := r.Pool.Query(ctx, findAPITokensByCompanyQuery, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list api tokens: %w", err)
	}
	tokens, err := collectRows(rows, func(row pgx.Row) (domain.APIToken, error) {
		m, err := scanAPIToken(row)
		if err != nil {
			return domain.APIToken{}, err
		}
		return mapping.ToDomainAPIToken(*m), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan api tokens: %w", err)
	}
	return tokens, nil
}

// TouchLastUsed records the time a token was last presented
func (r *PgxAPITokenRepository) TouchLastUsed(ctx context.Context, id string, usedAt time.Time) error {
	result, err := r.Pool.Exec(ctx, touchAPITokenQuery, id, usedAt)
	if err != nil {
		return fmt.Errorf("failed to touch api token %s: %w", id, err)
	}
	return expectOneRow(result, "api token", id)
}

// Revoke marks a token as revoked
func (r *PgxAPITokenRepository) Revoke(ctx context.Context, id string, revokedAt time.Time) error {
	result, err := r.Pool.Exec(ctx, revokeAPITokenQuery, id, revokedAt)
	if err != nil {
		return fmt.Errorf("failed to revoke api token %s: %w", id, err)
	}
	return expectOneRow(result, "api token", id)
}

// scanAPIToken scans an API token from a row
func scanAPIToken(row pgx.Row) (*models.APIToken, error) {
	var token models.APIToken
	err := row.Scan(
		&token.ID,
		&token.CompanyID,
		&token.CreatedBy,
		&token.Name,
		&token.TokenHash,
		&token.LastUsedAt,
		&token.ExpiresAt,
		&token.CreatedAt,
		&token.RevokedAt,
	)
	if err != nil {
		return nil, err
	}

	return &token, nil
}
