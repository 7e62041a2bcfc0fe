// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidID is returned when a document identifier is malformed.
	ErrInvalidID = errors.New("invalid ID")
)
