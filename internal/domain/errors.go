package domain

import "errors"

var (
	// ErrNotFound signals a missing catalog entry.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCatalog signals a catalog that failed validation at load time.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrUnknownCategory signals a search category outside the closed set.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidQuery signals a malformed search request (not an empty one).
	ErrInvalidQuery = errors.New("invalid query")
)
