package store

import "errors"

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput is returned when a required field is missing or empty
	ErrInvalidInput = errors.New("invalid record input")
)
