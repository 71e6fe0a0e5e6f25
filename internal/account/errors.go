package account

import "errors"

// Domain errors
var (
	// ErrNotFound - account does not exist or the user cannot access it
	ErrNotFound = errors.New("account: not found")

	// ErrInvalidToken - the provided access token was rejected by the provider
	ErrInvalidToken = errors.New("account: access token rejected by provider")

	// ErrTokenExpired - the stored token is expired; owner must reconnect
	ErrTokenExpired = errors.New("account: access token expired")

	// ErrAlreadyConnected - the IG account is connected by another user
	ErrAlreadyConnected = errors.New("account: already connected by another user")
)
