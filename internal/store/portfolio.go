package store

import (
	"context"

	"github.com/portfolioz/server/internal/domain"
)

// PortfolioStore defines the interface for published-portfolio persistence.
// Publishing is single-shot per email: the collection carries a unique index
// on email, so exactly one insert wins under concurrency.
type PortfolioStore interface {
	// GetByEmail retrieves the published portfolio for an email.
	// Returns ErrPortfolioNotFound if none is published.
	GetByEmail(ctx context.Context, email string) (*domain.Portfolio, error)

	// Create inserts a new portfolio. Returns ErrPortfolioExists when a
	// portfolio for the email was inserted concurrently; the caller then
	// reads back the winner with GetByEmail.
	Create(ctx context.Context, portfolio *domain.Portfolio) error
}
