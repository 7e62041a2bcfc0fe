package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/portfolioz/server/internal/domain"
)

// BlogStore defines the interface for blog post persistence.
type BlogStore interface {
	// List returns every blog post; blogs are the one resource served
	// without an owner filter.
	List(ctx context.Context) ([]domain.BlogPost, error)

	// GetByID retrieves a blog post by ID. Returns ErrBlogNotFound if absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.BlogPost, error)

	// Create inserts a new blog post and returns the assigned ID. The caller
	// stamps CreatedAt before insert.
	Create(ctx context.Context, post *domain.BlogPost) (primitive.ObjectID, error)

	// Replace overwrites the content fields of the post with the given ID.
	// CreatedAt is left untouched. Returns the number of documents matched.
	Replace(ctx context.Context, id primitive.ObjectID, post *domain.BlogPost) (int64, error)

	// Delete removes a blog post by ID and returns the number deleted.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
