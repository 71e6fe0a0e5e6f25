package repository

import "errors"

var (
	// ErrNotFound - no row matched the lookup
	ErrNotFound = errors.New("insights repository: not found")

	// ErrCacheMiss - the cache has no entry for the key
	ErrCacheMiss = errors.New("insights repository: cache miss")
)
