package export

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create generates a CSV of the account's latest snapshots, uploads it
	// to object storage and returns a presigned download link. Generation
	// is synchronous.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// GetDetail returns one export record with a fresh download link when
	// the export completed.
	GetDetail(ctx context.Context, sc model.Scope, exportID string) (GetDetailOutput, error)
}
