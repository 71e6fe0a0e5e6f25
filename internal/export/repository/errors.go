package repository

import "errors"

var (
	// ErrNotFound - no export row matched
	ErrNotFound = errors.New("export repository: not found")
)
