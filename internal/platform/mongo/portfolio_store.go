package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/portfolioz/server/internal/domain"
	"github.com/portfolioz/server/internal/store"
)

// PortfolioStore implements store.PortfolioStore backed by the portfolio
// collection. The collection carries a unique index on email (see
// EnsureIndexes), so Create is an atomic insert-if-absent.
type PortfolioStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewPortfolioStore creates a MongoDB implementation of the PortfolioStore
// interface.
func NewPortfolioStore(db *mongo.Database, logger *slog.Logger) *PortfolioStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PortfolioStore{
		coll:   db.Collection(portfoliosCollection),
		logger: logger.With(slog.String("component", "portfolio_store")),
	}
}

var _ store.PortfolioStore = (*PortfolioStore)(nil)

// GetByEmail retrieves the published portfolio for an email.
func (s *PortfolioStore) GetByEmail(ctx context.Context, email string) (*domain.Portfolio, error) {
	var portfolio domain.Portfolio
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&portfolio)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrPortfolioNotFound
		}
		s.logger.Error("failed to get portfolio", "error", err)
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return &portfolio, nil
}

// Create inserts a new portfolio. A duplicate-key error from the unique
// email index maps to store.ErrPortfolioExists so the publish flow can read
// back whichever concurrent insert won.
func (s *PortfolioStore) Create(ctx context.Context, portfolio *domain.Portfolio) error {
	_, err := s.coll.InsertOne(ctx, portfolio)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrPortfolioExists
		}
		s.logger.Error("failed to insert portfolio", "error", err)
		return fmt.Errorf("failed to insert portfolio: %w", err)
	}
	return nil
}
