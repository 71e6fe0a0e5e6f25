package repository

import "errors"

var (
	// ErrNotFound - no account row matched
	ErrNotFound = errors.New("account repository: not found")
)
