package repositories

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// MaxListResults caps every unfiltered listing.
const MaxListResults = 1000

// MaxSearchResults caps each kind of search result.
const MaxSearchResults = 50
