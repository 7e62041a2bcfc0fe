package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/portfolioz/server/internal/domain"
)

// TestimonialStore defines the interface for testimonial persistence.
// Semantics match ProjectStore, per entity.
type TestimonialStore interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Testimonial, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Testimonial, error)
	Create(ctx context.Context, testimonial *domain.Testimonial) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, testimonial *domain.Testimonial) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
