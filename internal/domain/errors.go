package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidID is returned when an identifier is malformed or not positive.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyHashedPassword is returned when a user is persisted without a password hash.
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)
