package repository

import (
	"context"

	"insight-srv/internal/insights"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	// UpsertMedia writes media rows, last write wins by media id.
	UpsertMedia(ctx context.Context, items []model.Media) error

	// GetMedia returns one media row scoped to the account.
	GetMedia(ctx context.Context, accountID, mediaID string) (model.Media, error)

	// UpsertSnapshots writes insight snapshots keyed by (media id, account id).
	UpsertSnapshots(ctx context.Context, snapshots []model.InsightSnapshot) error

	// GetSnapshot returns the latest snapshot for one media item.
	GetSnapshot(ctx context.Context, accountID, mediaID string) (model.InsightSnapshot, error)

	// ListMediaWithSnapshots joins media with their latest snapshots.
	ListMediaWithSnapshots(ctx context.Context, accountID string, opts ListOptions) ([]insights.MediaInsight, paginator.Paginator, error)

	// AggregateSnapshots sums canonical metrics over a period window.
	AggregateSnapshots(ctx context.Context, accountID string, opts AggregateOptions) (insights.DashboardSummary, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetDashboard(ctx context.Context, accountID string, periodDays int) ([]byte, error)
	SetDashboard(ctx context.Context, accountID string, periodDays int, data []byte) error
	GetMediaList(ctx context.Context, key string) ([]byte, error)
	SetMediaList(ctx context.Context, key string, data []byte) error
	InvalidateAccount(ctx context.Context, accountID string) error

	// AcquireSyncLock marks a sync as in flight; returns false when one is
	// already queued or running for the account.
	AcquireSyncLock(ctx context.Context, accountID string) (bool, error)
	ReleaseSyncLock(ctx context.Context, accountID string) error
}
