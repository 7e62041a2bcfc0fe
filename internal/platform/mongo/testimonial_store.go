package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/portfolioz/server/internal/domain"
	"github.com/portfolioz/server/internal/store"
)

// TestimonialStore implements store.TestimonialStore backed by the
// testimonial collection.
type TestimonialStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewTestimonialStore creates a MongoDB implementation of the
// TestimonialStore interface.
func NewTestimonialStore(db *mongo.Database, logger *slog.Logger) *TestimonialStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TestimonialStore{
		coll:   db.Collection(testimonialsCollection),
		logger: logger.With(slog.String("component", "testimonial_store")),
	}
}

var _ store.TestimonialStore = (*TestimonialStore)(nil)

func (s *TestimonialStore) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Testimonial, error) {
	return findByOwner[domain.Testimonial](ctx, s.coll, ownerEmail)
}

func (s *TestimonialStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Testimonial, error) {
	return findByID[domain.Testimonial](ctx, s.coll, id, store.ErrTestimonialNotFound)
}

func (s *TestimonialStore) Create(ctx context.Context, testimonial *domain.Testimonial) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, testimonial)
}

func (s *TestimonialStore) Replace(ctx context.Context, id primitive.ObjectID, testimonial *domain.Testimonial) (int64, error) {
	return setByID(ctx, s.coll, id, bson.M{
		"TestimonialpersonName": testimonial.PersonName,
		"PersonRole":            testimonial.PersonRole,
		"PersonImage":           testimonial.PersonImage,
		"Testimonial":           testimonial.Body,
	})
}

func (s *TestimonialStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return deleteByID(ctx, s.coll, id)
}
