package insights

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetDashboard returns the aggregated KPI view for one account.
	GetDashboard(ctx context.Context, sc model.Scope, input GetDashboardInput) (GetDashboardOutput, error)

	// GetMediaList returns media with their latest insight snapshots.
	GetMediaList(ctx context.Context, sc model.Scope, input GetMediaListInput) (GetMediaListOutput, error)

	// GetMediaInsights returns one media object with its snapshot.
	GetMediaInsights(ctx context.Context, sc model.Scope, input GetMediaInsightsInput) (GetMediaInsightsOutput, error)

	// GetTopContent ranks stored snapshots by score, reach or views.
	GetTopContent(ctx context.Context, sc model.Scope, input GetTopContentInput) (GetTopContentOutput, error)

	// RequestSync enqueues a sync job for the account.
	RequestSync(ctx context.Context, sc model.Scope, input RequestSyncInput) (RequestSyncOutput, error)

	// ProcessSync runs one sync job: fetch media, fan out insight requests,
	// normalize and persist. Called from the consumer binary.
	ProcessSync(ctx context.Context, job SyncJob) (SyncResult, error)
}

// Publisher emits sync pipeline events.
type Publisher interface {
	PublishSyncRequested(ctx context.Context, job SyncJob) error
	PublishSyncCompleted(ctx context.Context, result SyncResult) error
}
