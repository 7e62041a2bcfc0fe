// Package auth provides bearer-token issuance and verification plus the
// admin-role authorization check.
package auth

import (
	"context"

	"github.com/portfolioz/server/internal/domain"
)

// JWTService defines operations for managing JWT bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token embedding the user's email and
	// role. Tokens carry a fixed short expiry and there is no refresh
	// mechanism; the client requests a new token when one expires.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken verifies the token's signature and expiry and extracts
	// the claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the identity a verified bearer token asserts.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}
