package export

import "errors"

// Domain errors
var (
	// ErrNotFound - export does not exist or the user cannot access it
	ErrNotFound = errors.New("export: not found")

	// ErrNoData - the account has no snapshots to export
	ErrNoData = errors.New("export: no insight data to export")
)
