package graphapi

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenInvalid means the access token is expired or revoked. This is
	// fatal for the whole batch: the owner must reconnect the account.
	ErrTokenInvalid = errors.New("graphapi: access token is invalid or expired")

	// ErrEmptyResult means the call succeeded but returned no insight values.
	// Callers treat it like a failed candidate and move down the ladder.
	ErrEmptyResult = errors.New("graphapi: insights response contained no values")
)

// RequestError is any non-auth Graph error (invalid metric name for the
// media kind, permission gaps, transient provider errors). Recoverable:
// the fetch ladder tries the next metric combination.
type RequestError struct {
	StatusCode int
	Code       int
	Message    string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("graphapi: request failed (status=%d code=%d): %s", e.StatusCode, e.Code, e.Message)
}

// newGraphError classifies a Graph error envelope. Token problems become
// ErrTokenInvalid, everything else a recoverable RequestError.
func newGraphError(statusCode int, ge *graphError) error {
	if ge == nil {
		return &RequestError{StatusCode: statusCode, Message: "unknown error"}
	}
	if ge.Type == errTypeOAuth && (ge.Code == errCodeInvalidToken || statusCode == 401) {
		return fmt.Errorf("%w: %s", ErrTokenInvalid, ge.Message)
	}
	return &RequestError{StatusCode: statusCode, Code: ge.Code, Message: ge.Message}
}
