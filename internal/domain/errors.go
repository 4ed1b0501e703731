package domain

import "errors"

// Sentinel errors returned by repositories. Store-specific failures
// never cross this boundary; repositories translate them here and the
// usecase layer decides how they surface over HTTP.
var (
	// ErrNotFound is a normal outcome of a lookup, not a failure.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicate signals a store-enforced uniqueness violation.
	ErrDuplicate = errors.New("duplicate key")

	// ErrStoreUnavailable signals a transient connection failure. Write
	// paths are fully rolled back before it is returned.
	ErrStoreUnavailable = errors.New("store unavailable")
)
