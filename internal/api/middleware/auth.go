package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/portfolioz/server/internal/api/shared"
	"github.com/portfolioz/server/internal/service/auth"
)

// AuthMiddleware provides the two request gates: bearer-token
// authentication and the admin-role check. The gates are independent and
// order-sensitive; RequireAdmin needs the identity Authenticate put in the
// context, so admin routes chain Authenticate first.
type AuthMiddleware struct {
	jwtService auth.JWTService
	authorizer *auth.Authorizer
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, authorizer *auth.Authorizer) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		authorizer: authorizer,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the asserted identity to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		// A well-formed signed token has exactly three dot-separated segments.
		token := parts[1]
		if len(strings.Split(token, ".")) != 3 {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token structure")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken), errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized access")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects requests whose authenticated identity does not
// currently hold the admin role. Must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetIdentity(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		if err := m.authorizer.RequireAdmin(r.Context(), claims.Email); err != nil {
			if errors.Is(err, auth.ErrNotAdmin) {
				slog.Debug("admin verification failed", "email", claims.Email)
				shared.RespondWithError(w, r, http.StatusForbidden, "Unauthorized access")
				return
			}
			slog.Error("failed to verify admin role", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authorization error")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetIdentity extracts the authenticated identity from the request context.
// Returns the claims and a boolean indicating whether they were found.
func GetIdentity(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.IdentityContextKey).(*auth.Claims)
	return claims, ok
}
