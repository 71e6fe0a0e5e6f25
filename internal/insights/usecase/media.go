package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"insight-srv/internal/insights"
	"insight-srv/internal/insights/repository"
	"insight-srv/internal/model"
)

// GetMediaList returns media with their latest insight snapshots.
// Flow: check cache → verify ownership → list from repository → cache → return
func (uc *implUseCase) GetMediaList(ctx context.Context, sc model.Scope, input insights.GetMediaListInput) (insights.GetMediaListOutput, error) {
	input.PagQuery.Adjust()

	switch input.Sort {
	case "", insights.RankByScore, insights.RankByReach, insights.RankByViews:
	default:
		return insights.GetMediaListOutput{}, insights.ErrInvalidRankBy
	}

	// Step 1: Cache check
	cacheKey := mediaListCacheKey(input)
	if data, err := uc.cacheRepo.GetMediaList(ctx, cacheKey); err == nil && data != nil {
		var cached insights.GetMediaListOutput
		if err := json.Unmarshal(data, &cached); err == nil {
			cached.CacheHit = true
			return cached, nil
		}
	}

	// Step 2: Verify ownership
	if _, err := uc.accountUC.GetDetail(ctx, sc, input.AccountID); err != nil {
		return insights.GetMediaListOutput{}, insights.ErrAccountNotFound
	}

	// Step 3: List media joined with snapshots
	items, pag, err := uc.repo.ListMediaWithSnapshots(ctx, input.AccountID, repository.ListOptions{
		Kind:     input.Kind,
		Sort:     input.Sort,
		PagQuery: input.PagQuery,
	})
	if err != nil {
		return insights.GetMediaListOutput{}, err
	}

	output := insights.GetMediaListOutput{
		Items:     items,
		Paginator: pag,
	}

	// Step 4: Cache the page (best effort)
	if data, err := json.Marshal(output); err == nil {
		if err := uc.cacheRepo.SetMediaList(ctx, cacheKey, data); err != nil {
			uc.l.Warnf(ctx, "insights.usecase.GetMediaList: cache write failed: %v", err)
		}
	}

	return output, nil
}

// GetMediaInsights returns one media object with its snapshot.
func (uc *implUseCase) GetMediaInsights(ctx context.Context, sc model.Scope, input insights.GetMediaInsightsInput) (insights.GetMediaInsightsOutput, error) {
	if _, err := uc.accountUC.GetDetail(ctx, sc, input.AccountID); err != nil {
		return insights.GetMediaInsightsOutput{}, insights.ErrAccountNotFound
	}

	media, err := uc.repo.GetMedia(ctx, input.AccountID, input.MediaID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return insights.GetMediaInsightsOutput{}, insights.ErrMediaNotFound
		}
		return insights.GetMediaInsightsOutput{}, err
	}

	snapshot, err := uc.repo.GetSnapshot(ctx, input.AccountID, input.MediaID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return insights.GetMediaInsightsOutput{}, err
	}

	// A media row without a snapshot renders as "no insight data yet".
	return insights.GetMediaInsightsOutput{
		Item: insights.MediaInsight{
			Media:    media,
			Snapshot: snapshot,
		},
	}, nil
}

// GetTopContent ranks stored snapshots by score, reach or views.
func (uc *implUseCase) GetTopContent(ctx context.Context, sc model.Scope, input insights.GetTopContentInput) (insights.GetTopContentOutput, error) {
	switch input.RankBy {
	case insights.RankByScore, insights.RankByReach, insights.RankByViews:
	case "":
		input.RankBy = insights.RankByScore
	default:
		return insights.GetTopContentOutput{}, insights.ErrInvalidRankBy
	}

	if _, err := uc.accountUC.GetDetail(ctx, sc, input.AccountID); err != nil {
		return insights.GetTopContentOutput{}, insights.ErrAccountNotFound
	}

	items, _, err := uc.repo.ListMediaWithSnapshots(ctx, input.AccountID, repository.ListOptions{})
	if err != nil {
		return insights.GetTopContentOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}
	if limit > uc.cfg.TopContentSize && input.Limit <= 0 {
		limit = uc.cfg.TopContentSize
	}

	ranked := Rank(items, input.RankBy)
	return insights.GetTopContentOutput{Items: ranked[:limit]}, nil
}

func mediaListCacheKey(input insights.GetMediaListInput) string {
	kind := input.Kind
	if kind == "" {
		kind = "all"
	}
	sort := string(input.Sort)
	if sort == "" {
		sort = "recent"
	}
	return fmt.Sprintf("%s:%s:%s:%d:%d", input.AccountID, kind, sort, input.PagQuery.Page, input.PagQuery.Limit)
}
