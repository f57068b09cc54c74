package models

import "time"

// APIToken represents an organization API key row
type APIToken struct {
	ID         string     `db:"id"`
	CompanyID  string     `db:"company_id"`
	CreatedBy  string     `db:"created_by"`
	Name       string     `db:"name"`
	TokenHash  string     `db:"token_hash"`
	LastUsedAt *time.Time `db:"last_used_at"`
	ExpiresAt  *time.Time `db:"expires_at"`
	CreatedAt  time.Time  `db:"created_at"`
	RevokedAt  *time.Time `db:"revoked_at"`
}
