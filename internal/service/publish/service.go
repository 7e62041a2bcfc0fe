// Package publish implements the publish-portfolio flow: sanitize untrusted
// HTML, persist it once per owner email, and mint a stable live link.
package publish

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/portfolioz/server/internal/config"
	"github.com/portfolioz/server/internal/domain"
	"github.com/portfolioz/server/internal/store"
)

// Service publishes and serves portfolios. Publishing is first-write-wins:
// the first successful publish for an email permanently determines the
// stored HTML and live link.
type Service struct {
	portfolios store.PortfolioStore
	policy     *bluemonday.Policy
	baseURL    string
	timeFunc   func() time.Time // injectable for testing
}

// NewService creates a publish Service. Live links are minted under
// cfg.BaseURL.
func NewService(portfolios store.PortfolioStore, cfg config.PublishConfig) *Service {
	return &Service{
		portfolios: portfolios,
		policy:     newPolicy(),
		baseURL:    cfg.BaseURL,
		timeFunc:   time.Now,
	}
}

// Sanitize runs raw HTML through the portfolio allow-list policy.
func (s *Service) Sanitize(rawHTML string) string {
	return s.policy.Sanitize(rawHTML)
}

// Publish sanitizes rawHTML and persists it for email, returning the live
// link. If a portfolio already exists for the email the existing link is
// returned unchanged and the stored HTML is NOT updated: publishing is
// single-shot per email. Concurrent first publishes are resolved by the
// store's unique index; the loser reads back the winner's link.
func (s *Service) Publish(ctx context.Context, email, rawHTML string) (string, error) {
	sanitized := s.Sanitize(rawHTML)

	existing, err := s.portfolios.GetByEmail(ctx, email)
	if err == nil {
		return existing.LiveLink, nil
	}
	if !errors.Is(err, store.ErrPortfolioNotFound) {
		return "", fmt.Errorf("failed to check for existing portfolio: %w", err)
	}

	portfolio := &domain.Portfolio{
		Email:     email,
		HTML:      sanitized,
		LiveLink:  fmt.Sprintf("%s/portfolio/%s", s.baseURL, email),
		CreatedAt: s.timeFunc(),
	}

	if err := s.portfolios.Create(ctx, portfolio); err != nil {
		if errors.Is(err, store.ErrPortfolioExists) {
			winner, getErr := s.portfolios.GetByEmail(ctx, email)
			if getErr != nil {
				return "", fmt.Errorf("failed to read concurrently published portfolio: %w", getErr)
			}
			return winner.LiveLink, nil
		}
		return "", fmt.Errorf("failed to publish portfolio: %w", err)
	}

	return portfolio.LiveLink, nil
}

// Fetch returns the stored sanitized HTML for email, never the live link.
// Returns store.ErrPortfolioNotFound when nothing is published.
func (s *Service) Fetch(ctx context.Context, email string) (string, error) {
	portfolio, err := s.portfolios.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return portfolio.HTML, nil
}
