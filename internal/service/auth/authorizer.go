package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/portfolioz/server/internal/store"
)

// Authorizer checks whether an authenticated identity may perform
// admin-gated operations. The role is re-read from the user store rather
// than trusted from the token, so a role change takes effect before the
// token expires.
type Authorizer struct {
	userStore store.UserStore
}

// NewAuthorizer creates an Authorizer backed by the given user store.
func NewAuthorizer(userStore store.UserStore) *Authorizer {
	return &Authorizer{userStore: userStore}
}

// RequireAdmin returns nil when the user identified by email currently holds
// the admin role. Returns ErrNotAdmin otherwise, including when the user no
// longer exists.
func (a *Authorizer) RequireAdmin(ctx context.Context, email string) error {
	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrNotAdmin
		}
		return fmt.Errorf("failed to look up user for authorization: %w", err)
	}

	if !user.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}
