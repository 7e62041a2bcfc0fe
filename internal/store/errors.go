package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested document does not exist in
	// the store. This is the generic version of the entity-specific not
	// found errors below.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique document (e.g. a portfolio for an email that already has one).
	ErrDuplicate = errors.New("document already exists")

	// Entity-specific "not found" errors.

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrProjectNotFound indicates that the requested project does not exist.
	ErrProjectNotFound = fmt.Errorf("%w: project", ErrNotFound)

	// ErrSkillNotFound indicates that the requested skill does not exist.
	ErrSkillNotFound = fmt.Errorf("%w: skill", ErrNotFound)

	// ErrTestimonialNotFound indicates that the requested testimonial does not exist.
	ErrTestimonialNotFound = fmt.Errorf("%w: testimonial", ErrNotFound)

	// ErrBlogNotFound indicates that the requested blog post does not exist.
	ErrBlogNotFound = fmt.Errorf("%w: blog", ErrNotFound)

	// ErrPortfolioNotFound indicates that no portfolio is published for the email.
	ErrPortfolioNotFound = fmt.Errorf("%w: portfolio", ErrNotFound)

	// ErrPortfolioExists indicates a portfolio is already published for the
	// email. The store's unique index raises this on concurrent first
	// publishes; callers fall back to reading the winner's document.
	ErrPortfolioExists = fmt.Errorf("%w: portfolio", ErrDuplicate)
)
