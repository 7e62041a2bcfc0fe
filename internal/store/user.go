package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/portfolioz/server/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user. The store assigns the ID and returns it.
	// Registration does not enforce uniqueness here; callers check
	// GetByEmail first and treat an existing email as a no-op.
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users in the store's natural order.
	List(ctx context.Context) ([]domain.User, error)

	// Delete removes a user by ID. Returns the number of documents deleted;
	// zero with a nil error means nothing matched.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
