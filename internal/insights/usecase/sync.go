package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"insight-srv/internal/insights"
	"insight-srv/internal/model"
	"insight-srv/pkg/graphapi"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RequestSync enqueues a sync job for the account.
// Flow: verify ownership → acquire sync lock → publish sync.requested
func (uc *implUseCase) RequestSync(ctx context.Context, sc model.Scope, input insights.RequestSyncInput) (insights.RequestSyncOutput, error) {
	// Step 1: Verify the caller owns the account
	acc, err := uc.accountUC.GetDetail(ctx, sc, input.AccountID)
	if err != nil {
		return insights.RequestSyncOutput{}, insights.ErrAccountNotFound
	}
	if acc.TokenStatus == model.TokenStatusExpired {
		return insights.RequestSyncOutput{}, insights.ErrTokenExpired
	}

	// Step 2: One sync in flight per account
	acquired, err := uc.cacheRepo.AcquireSyncLock(ctx, input.AccountID)
	if err != nil {
		return insights.RequestSyncOutput{}, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	if !acquired {
		return insights.RequestSyncOutput{}, insights.ErrSyncInProgress
	}

	// Step 3: Publish the job
	job := insights.SyncJob{
		JobID:       uuid.New().String(),
		AccountID:   input.AccountID,
		UserID:      sc.UserID,
		RequestedAt: time.Now(),
	}
	if err := uc.publisher.PublishSyncRequested(ctx, job); err != nil {
		_ = uc.cacheRepo.ReleaseSyncLock(ctx, input.AccountID)
		return insights.RequestSyncOutput{}, fmt.Errorf("failed to publish sync request: %w", err)
	}

	uc.l.Infof(ctx, "insights.usecase.RequestSync: queued job %s for account %s", job.JobID, input.AccountID)
	return insights.RequestSyncOutput{
		JobID:       job.JobID,
		RequestedAt: job.RequestedAt,
	}, nil
}

// ProcessSync runs one sync job end to end.
// Flow: load account + token → refresh profile → fetch media + stories →
// upsert media → bounded fan-out of insight requests → normalize → upsert
// snapshots → invalidate caches → publish sync.completed
func (uc *implUseCase) ProcessSync(ctx context.Context, job insights.SyncJob) (insights.SyncResult, error) {
	defer func() {
		_ = uc.cacheRepo.ReleaseSyncLock(ctx, job.AccountID)
	}()

	// Step 1: Load account and decrypted token
	acc, err := uc.accountUC.GetByID(ctx, job.AccountID)
	if err != nil {
		return insights.SyncResult{}, insights.ErrAccountNotFound
	}
	accessToken, err := uc.accountUC.GetAccessToken(ctx, job.AccountID)
	if err != nil {
		return insights.SyncResult{}, err
	}

	// Step 2: Refresh profile so follower-based rates use current counts
	followers := acc.FollowersCount
	if profile, err := uc.graphClient.GetProfile(ctx, acc.IGUserID, accessToken); err == nil {
		followers = profile.FollowersCount
	} else {
		if fatal := uc.checkTokenFatal(ctx, err, job.AccountID); fatal != nil {
			return insights.SyncResult{}, fatal
		}
		uc.l.Warnf(ctx, "insights.usecase.ProcessSync: profile refresh failed for account %s: %v", job.AccountID, err)
	}

	// Step 3: Fetch recent media and active stories
	mediaList, err := uc.fetchMediaObjects(ctx, acc, accessToken)
	if err != nil {
		if fatal := uc.checkTokenFatal(ctx, err, job.AccountID); fatal != nil {
			return insights.SyncResult{}, fatal
		}
		return insights.SyncResult{}, fmt.Errorf("failed to fetch media list: %w", err)
	}

	if err := uc.repo.UpsertMedia(ctx, mediaList); err != nil {
		return insights.SyncResult{}, fmt.Errorf("failed to upsert media: %w", err)
	}

	// Step 4: Bounded fan-out of per-media insight requests. A single
	// item exhausting its ladder degrades that item only; a rejected
	// token aborts the whole batch.
	syncedAt := time.Now()
	snapshots := make([]model.InsightSnapshot, 0, len(mediaList))
	var (
		mu           sync.Mutex
		partialCount int
		failedCount  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.MaxConcurrency)

	for i := range mediaList {
		media := mediaList[i]
		g.Go(func() error {
			bag, err := uc.fetchInsights(gctx, accessToken, media)
			if err != nil {
				return err
			}

			normalized := Normalize(bag, insights.ContentDescriptor{
				Kind:          media.Kind,
				IsReel:        media.IsReel,
				LikeCount:     media.LikeCount,
				CommentsCount: media.CommentsCount,
			}, followers, uc.cfg.Weights)

			mu.Lock()
			defer mu.Unlock()
			snapshots = append(snapshots, buildSnapshot(media, normalized, syncedAt))
			if normalized.Partial.IsPartial {
				partialCount++
			}
			if !normalized.Partial.HasInsights {
				failedCount++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, insights.ErrTokenExpired) {
			_ = uc.accountUC.MarkTokenExpired(ctx, job.AccountID)
			uc.l.Errorf(ctx, "insights.usecase.ProcessSync: token rejected for account %s, aborting batch", job.AccountID)
		}
		return insights.SyncResult{}, err
	}

	// Step 5: Persist snapshots and invalidate cached views
	if err := uc.repo.UpsertSnapshots(ctx, snapshots); err != nil {
		return insights.SyncResult{}, fmt.Errorf("failed to upsert snapshots: %w", err)
	}
	if err := uc.cacheRepo.InvalidateAccount(ctx, job.AccountID); err != nil {
		uc.l.Warnf(ctx, "insights.usecase.ProcessSync: cache invalidation failed for account %s: %v", job.AccountID, err)
	}
	if err := uc.accountUC.MarkSynced(ctx, job.AccountID, syncedAt); err != nil {
		uc.l.Warnf(ctx, "insights.usecase.ProcessSync: failed to record sync time for account %s: %v", job.AccountID, err)
	}

	result := insights.SyncResult{
		JobID:        job.JobID,
		AccountID:    job.AccountID,
		MediaCount:   len(snapshots),
		PartialCount: partialCount,
		FailedCount:  failedCount,
		SyncedAt:     syncedAt,
	}

	// Step 6: Publish completion event (best effort)
	if err := uc.publisher.PublishSyncCompleted(ctx, result); err != nil {
		uc.l.Warnf(ctx, "insights.usecase.ProcessSync: failed to publish completion for job %s: %v", job.JobID, err)
	}

	uc.l.Infof(ctx, "insights.usecase.ProcessSync: job %s synced %d media (%d partial, %d without insights)",
		job.JobID, result.MediaCount, result.PartialCount, result.FailedCount)
	return result, nil
}

// fetchMediaObjects pulls recent media plus active stories and maps them to
// model rows.
func (uc *implUseCase) fetchMediaObjects(ctx context.Context, acc model.Account, accessToken string) ([]model.Media, error) {
	items, err := uc.graphClient.GetMediaList(ctx, acc.IGUserID, accessToken, uc.cfg.MediaLimit)
	if err != nil {
		return nil, err
	}

	stories, err := uc.graphClient.GetStories(ctx, acc.IGUserID, accessToken)
	if err != nil {
		// Story read permission is optional; media sync proceeds without it.
		uc.l.Warnf(ctx, "insights.usecase.fetchMediaObjects: stories fetch failed for account %s: %v", acc.ID, err)
	} else {
		items = append(items, stories...)
	}

	mediaList := make([]model.Media, 0, len(items))
	for _, item := range items {
		mediaList = append(mediaList, mapMediaItem(acc.ID, item))
	}
	return mediaList, nil
}

func (uc *implUseCase) checkTokenFatal(ctx context.Context, err error, accountID string) error {
	if errors.Is(err, graphapi.ErrTokenInvalid) || errors.Is(err, insights.ErrTokenExpired) {
		_ = uc.accountUC.MarkTokenExpired(ctx, accountID)
		return insights.ErrTokenExpired
	}
	return nil
}

func buildSnapshot(media model.Media, n insights.NormalizedInsight, syncedAt time.Time) model.InsightSnapshot {
	return model.InsightSnapshot{
		MediaID:   media.ID,
		AccountID: media.AccountID,

		Views:             n.Canonical.Views,
		Reach:             n.Canonical.Reach,
		Saves:             n.Canonical.Saves,
		Shares:            n.Canonical.Shares,
		TotalInteractions: n.Canonical.TotalInteractions,

		Engagement:               n.Derived.Engagement,
		Score:                    n.Derived.Score,
		EngagementRate:           n.Derived.EngagementRate,
		ReachRate:                n.Derived.ReachRate,
		ViewsRate:                n.Derived.ViewsRate,
		InteractionsPer1000Reach: n.Derived.InteractionsPer1000Reach,

		IsPartial:      n.Partial.IsPartial,
		MissingMetrics: n.Partial.MissingMetrics,
		HasInsights:    n.Partial.HasInsights,

		Raw:      n.Canonical.Raw,
		SyncedAt: syncedAt,
	}
}
