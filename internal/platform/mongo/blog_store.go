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

// BlogStore implements store.BlogStore backed by the blog collection.
type BlogStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewBlogStore creates a MongoDB implementation of the BlogStore interface.
func NewBlogStore(db *mongo.Database, logger *slog.Logger) *BlogStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlogStore{
		coll:   db.Collection(blogsCollection),
		logger: logger.With(slog.String("component", "blog_store")),
	}
}

var _ store.BlogStore = (*BlogStore)(nil)

func (s *BlogStore) List(ctx context.Context) ([]domain.BlogPost, error) {
	return findAll[domain.BlogPost](ctx, s.coll)
}

func (s *BlogStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.BlogPost, error) {
	return findByID[domain.BlogPost](ctx, s.coll, id, store.ErrBlogNotFound)
}

func (s *BlogStore) Create(ctx context.Context, post *domain.BlogPost) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, post)
}

// Replace overwrites the post's content fields. createdAt is deliberately
// absent from the $set so the creation timestamp survives updates.
func (s *BlogStore) Replace(ctx context.Context, id primitive.ObjectID, post *domain.BlogPost) (int64, error) {
	return setByID(ctx, s.coll, id, bson.M{
		"BlogTitle":   post.Title,
		"BlogAuthor":  post.Author,
		"BlogImage":   post.Image,
		"BlogContent": post.Content,
	})
}

func (s *BlogStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return deleteByID(ctx, s.coll, id)
}
