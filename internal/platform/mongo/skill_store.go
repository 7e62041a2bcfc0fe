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

// SkillStore implements store.SkillStore backed by the skill collection.
type SkillStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewSkillStore creates a MongoDB implementation of the SkillStore interface.
func NewSkillStore(db *mongo.Database, logger *slog.Logger) *SkillStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SkillStore{
		coll:   db.Collection(skillsCollection),
		logger: logger.With(slog.String("component", "skill_store")),
	}
}

var _ store.SkillStore = (*SkillStore)(nil)

func (s *SkillStore) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Skill, error) {
	return findByOwner[domain.Skill](ctx, s.coll, ownerEmail)
}

func (s *SkillStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Skill, error) {
	return findByID[domain.Skill](ctx, s.coll, id, store.ErrSkillNotFound)
}

func (s *SkillStore) Create(ctx context.Context, skill *domain.Skill) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, skill)
}

func (s *SkillStore) Replace(ctx context.Context, id primitive.ObjectID, skill *domain.Skill) (int64, error) {
	return setByID(ctx, s.coll, id, bson.M{
		"SkillName":  skill.Name,
		"SkillLevel": skill.Level,
		"SkillImage": skill.Image,
	})
}

func (s *SkillStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return deleteByID(ctx, s.coll, id)
}
