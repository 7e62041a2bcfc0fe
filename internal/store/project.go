package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/portfolioz/server/internal/domain"
)

// ProjectStore defines the interface for project persistence.
type ProjectStore interface {
	// ListByOwner returns all projects recorded for the owner email, in the
	// store's natural order. An empty slice means no matches.
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Project, error)

	// GetByID retrieves a project by ID. Returns ErrProjectNotFound if absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Project, error)

	// Create inserts a new project and returns the assigned ID.
	Create(ctx context.Context, project *domain.Project) (primitive.ObjectID, error)

	// Replace overwrites the content fields of the project with the given ID.
	// Fields are set wholesale, not merged; the caller resends the full record.
	// Returns the number of documents matched (zero when the project vanished
	// between the caller's existence check and the update).
	Replace(ctx context.Context, id primitive.ObjectID, project *domain.Project) (int64, error)

	// Delete removes a project by ID and returns the number deleted.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
