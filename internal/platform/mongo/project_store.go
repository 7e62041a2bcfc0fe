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

// ProjectStore implements store.ProjectStore backed by the project collection.
type ProjectStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewProjectStore creates a MongoDB implementation of the ProjectStore interface.
func NewProjectStore(db *mongo.Database, logger *slog.Logger) *ProjectStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectStore{
		coll:   db.Collection(projectsCollection),
		logger: logger.With(slog.String("component", "project_store")),
	}
}

var _ store.ProjectStore = (*ProjectStore)(nil)

func (s *ProjectStore) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Project, error) {
	return findByOwner[domain.Project](ctx, s.coll, ownerEmail)
}

func (s *ProjectStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Project, error) {
	return findByID[domain.Project](ctx, s.coll, id, store.ErrProjectNotFound)
}

func (s *ProjectStore) Create(ctx context.Context, project *domain.Project) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, project)
}

// Replace overwrites the project's content fields. The owner email is not
// part of the payload: ownership is fixed at creation.
func (s *ProjectStore) Replace(ctx context.Context, id primitive.ObjectID, project *domain.Project) (int64, error) {
	return setByID(ctx, s.coll, id, bson.M{
		"ProjectName":        project.Name,
		"ProjectDescription": project.Description,
		"ProjectImage":       project.Image,
		"ProjectLink":        project.Link,
	})
}

func (s *ProjectStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return deleteByID(ctx, s.coll, id)
}
