package domain

import "errors"

var (
	// ErrCatalogNotFound indicates the question catalog could not be loaded.
	ErrCatalogNotFound = errors.New("question catalog not found")
	// ErrInvalidAge is returned when a caller passes a negative age.
	ErrInvalidAge = errors.New("age must be a non-negative number of months")
)
