package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/portfolioz/server/internal/domain"
	"github.com/portfolioz/server/internal/store"
)

// UserStore implements store.UserStore backed by the user collection.
type UserStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewUserStore creates a MongoDB implementation of the UserStore interface.
// If logger is nil, the default logger is used.
func NewUserStore(db *mongo.Database, logger *slog.Logger) *UserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		coll:   db.Collection(usersCollection),
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

// Create inserts a new user and returns the assigned ID.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		s.logger.Error("failed to insert user", "error", err, "email", user.Email)
		return primitive.NilObjectID, fmt.Errorf("failed to insert user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}
	return id, nil
}

// GetByEmail retrieves a user by email address.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// List returns all users.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// Delete removes a user by ID and returns the number of documents deleted.
func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id.Hex())
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return res.DeletedCount, nil
}
