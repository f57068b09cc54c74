package dto

import (
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// CreateAPITokenRequest represents the request to create a new API token
type CreateAPITokenRequest struct {
	Name          string `json:"name" binding:"required,min=3,max=100"`
	ExpiresInDays *int   `json:"expiresInDays,omitempty" binding:"omitempty,gte=1,lte=3650"`
}

// APITokenResponse represents the API token data returned to the client
type APITokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	CreatedBy  string     `json:"createdBy"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CreateAPITokenResponse represents the response when creating a new API token
type CreateAPITokenResponse struct {
	TokenString string           `json:"token"`
	Details     APITokenResponse `json:"details"`
}

// ListAPITokensResponse represents the response when listing API tokens
type ListAPITokensResponse struct {
	Tokens []APITokenResponse `json:"tokens"`
}

// ToAPITokenResponse converts a domain.APIToken to an APITokenResponse
func ToAPITokenResponse(token *domain.APIToken) APITokenResponse {
	return APITokenResponse{
		ID:         token.ID,
		Name:       token.Name,
		CreatedBy:  token.CreatedBy,
		LastUsedAt: token.LastUsedAt,
		ExpiresAt:  token.ExpiresAt,
		CreatedAt:  token.CreatedAt,
	}
}

// ToListAPITokensResponse converts a slice of domain.APIToken to ListAPITokensResponse
func ToListAPITokensResponse(tokens []domain.APIToken) ListAPITokensResponse {
	res := ListAPITokensResponse{Tokens: make([]APITokenResponse, len(tokens))}
	for i := range tokens {
		res.Tokens[i] = ToAPITokenResponse(&tokens[i])
	}
	return res
}
