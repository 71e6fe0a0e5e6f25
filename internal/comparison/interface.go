package comparison

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetSummary aggregates the account's metrics over the requested window
	// and compares them against the window of the same length before it.
	GetSummary(ctx context.Context, sc model.Scope, input GetSummaryInput) (GetSummaryOutput, error)
}
