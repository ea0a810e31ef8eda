package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrIDGeneration is returned when a fresh identifier could not be
	// generated. Kept distinct from persistence failures so the two can
	// be told apart in server-side logs; clients see the same generic
	// creation failure either way.
	ErrIDGeneration = errors.New("identifier generation failed")
)
