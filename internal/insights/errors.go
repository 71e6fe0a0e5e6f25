package insights

import "errors"

// Domain errors
var (
	// ErrAccountNotFound - account does not exist or the user cannot access it
	ErrAccountNotFound = errors.New("insights: account not found")

	// ErrMediaNotFound - media object does not exist for this account
	ErrMediaNotFound = errors.New("insights: media not found")

	// ErrTokenExpired - the stored access token was rejected by the provider;
	// the owner must reconnect the account. Fatal for a whole sync batch.
	ErrTokenExpired = errors.New("insights: access token expired, account must be reconnected")

	// ErrInvalidPeriod - requested comparison/dashboard period is not supported
	ErrInvalidPeriod = errors.New("insights: invalid period")

	// ErrInvalidRankBy - unsupported ranking key for top content
	ErrInvalidRankBy = errors.New("insights: invalid ranking key")

	// ErrSyncInProgress - a sync for this account is already queued or running
	ErrSyncInProgress = errors.New("insights: sync already in progress")
)
