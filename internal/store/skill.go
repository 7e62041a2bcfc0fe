package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/portfolioz/server/internal/domain"
)

// SkillStore defines the interface for skill persistence. Semantics match
// ProjectStore, per entity.
type SkillStore interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Skill, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Skill, error)
	Create(ctx context.Context, skill *domain.Skill) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, skill *domain.Skill) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
