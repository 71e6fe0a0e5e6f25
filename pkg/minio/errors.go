package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

var (
	// ErrObjectNotFound means the requested object does not exist.
	ErrObjectNotFound = errors.New("minio: object not found")
	// ErrNotConnected means the client has not established a connection yet.
	ErrNotConnected = errors.New("minio: not connected")
)

// InvalidInputError is a validation failure on the caller's side.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("minio: invalid input: %s", e.Reason)
}

func newInvalidInputError(reason string) error {
	return &InvalidInputError{Reason: reason}
}

// wrapMinIOError classifies errors from the underlying client. Missing
// objects map to ErrObjectNotFound so callers can branch on it.
func wrapMinIOError(err error, op string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, op)
	}
	return fmt.Errorf("minio: %s failed: %w", op, err)
}
