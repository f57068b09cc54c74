package domain

import "time"

// APIToken is an organization-scoped key for machine clients.
type APIToken struct {
	ID         string     `json:"id"`
	CompanyID  string     `json:"companyID"`
	CreatedBy  string     `json:"createdBy"`
	Name       string     `json:"name"`
	TokenHash  string     `json:"-"` // Never expose the hash in JSON responses
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	RevokedAt  *time.Time `json:"-"`
}

// IsExpired checks if the token has expired
func (t *APIToken) IsExpired() bool {
	if t.ExpiresAt == nil {
		return false
	}
	return t.ExpiresAt.Before(time.Now())
}

// IsRevoked reports whether the token was revoked.
func (t *APIToken) IsRevoked() bool {
	return t.RevokedAt != nil
}
