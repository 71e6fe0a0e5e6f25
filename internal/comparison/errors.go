package comparison

import "errors"

// Domain errors
var (
	// ErrInvalidPeriod - the requested window length is not usable
	ErrInvalidPeriod = errors.New("comparison: invalid period")
)
