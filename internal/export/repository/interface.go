package repository

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// Create inserts a PROCESSING export row.
	Create(ctx context.Context, opt CreateOptions) (model.Export, error)

	// GetByID loads one export row.
	GetByID(ctx context.Context, id string) (model.Export, error)

	// MarkCompleted records the uploaded object and flips the status.
	MarkCompleted(ctx context.Context, opt MarkCompletedOptions) error

	// MarkFailed records the failure reason.
	MarkFailed(ctx context.Context, id, errorMessage string) error
}
