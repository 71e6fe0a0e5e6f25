package usecase

import (
	"context"
	"encoding/json"
	"time"

	"insight-srv/internal/insights"
	"insight-srv/internal/insights/repository"
	"insight-srv/internal/model"
)

// GetDashboard returns the aggregated KPI view for one account.
// Flow: check cache → load account → aggregate snapshots → rank top content → cache → return
func (uc *implUseCase) GetDashboard(ctx context.Context, sc model.Scope, input insights.GetDashboardInput) (insights.GetDashboardOutput, error) {
	periodDays := input.PeriodDays
	if periodDays <= 0 {
		periodDays = insights.DefaultPeriodDays
	}

	// Step 1: Cache check
	if data, err := uc.cacheRepo.GetDashboard(ctx, input.AccountID, periodDays); err == nil && data != nil {
		var cached insights.GetDashboardOutput
		if err := json.Unmarshal(data, &cached); err == nil {
			cached.CacheHit = true
			uc.l.Debugf(ctx, "insights.usecase.GetDashboard: cache hit for account %s", input.AccountID)
			return cached, nil
		}
	}

	// Step 2: Verify ownership and load the account
	acc, err := uc.accountUC.GetDetail(ctx, sc, input.AccountID)
	if err != nil {
		return insights.GetDashboardOutput{}, insights.ErrAccountNotFound
	}

	since := time.Now().AddDate(0, 0, -periodDays)

	// Step 3: Aggregate stored snapshots over the window
	summary, err := uc.repo.AggregateSnapshots(ctx, input.AccountID, repository.AggregateOptions{Since: &since})
	if err != nil {
		return insights.GetDashboardOutput{}, err
	}

	// Step 4: Rank top content by score
	items, _, err := uc.repo.ListMediaWithSnapshots(ctx, input.AccountID, repository.ListOptions{Since: &since})
	if err != nil {
		return insights.GetDashboardOutput{}, err
	}

	ranked := Rank(items, insights.RankByScore)
	if len(ranked) > uc.cfg.TopContentSize {
		ranked = ranked[:uc.cfg.TopContentSize]
	}

	partialCount := 0
	for _, item := range items {
		if item.Snapshot.IsPartial {
			partialCount++
		}
	}

	output := insights.GetDashboardOutput{
		Account:      acc,
		Summary:      summary,
		TopContent:   ranked,
		PartialCount: partialCount,
		SyncedAt:     acc.LastSyncedAt,
	}

	// Step 5: Cache the result (best effort)
	if data, err := json.Marshal(output); err == nil {
		if err := uc.cacheRepo.SetDashboard(ctx, input.AccountID, periodDays, data); err != nil {
			uc.l.Warnf(ctx, "insights.usecase.GetDashboard: cache write failed for account %s: %v", input.AccountID, err)
		}
	}

	return output, nil
}
