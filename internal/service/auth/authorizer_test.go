package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/portfolioz/server/internal/domain"
	"github.com/portfolioz/server/internal/store"
)

// stubUserStore returns a fixed set of users keyed by email.
type stubUserStore struct {
	users map[string]*domain.User
}

func (s *stubUserStore) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserStore) List(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *stubUserStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return 0, nil
}

func TestAuthorizer_RequireAdmin(t *testing.T) {
	t.Parallel()

	userStore := &stubUserStore{users: map[string]*domain.User{
		"admin@x.com": {Email: "admin@x.com", Role: domain.RoleAdmin},
		"user@x.com":  {Email: "user@x.com", Role: "member"},
	}}
	authorizer := NewAuthorizer(userStore)

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"admin allowed", "admin@x.com", nil},
		{"regular user rejected", "user@x.com", ErrNotAdmin},
		{"unknown user rejected", "ghost@x.com", ErrNotAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizer.RequireAdmin(context.Background(), tt.email)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
