package usecase

import (
	"context"
	"errors"

	"insight-srv/internal/insights"
	"insight-srv/internal/model"
	"insight-srv/pkg/graphapi"
)

// Metric combinations per content kind, most complete first. Requesting an
// invalid metric name fails the whole call rather than returning a partial
// result, and the provider has no introspection endpoint, so valid
// combinations are hard-coded per kind and tried in order.
var (
	storyCombinations = [][]string{
		{"views", "reach", "shares"},
		{"impressions", "reach"},
		{"reach"},
	}

	reelCombinations = [][]string{
		{"views", "reach", "saved", "shares", "total_interactions"},
		{"plays", "reach", "saved", "shares", "total_interactions"},
		{"plays", "reach", "saved"},
		{"video_views", "reach", "saved"},
		{"reach", "saved"},
	}

	videoCombinations = [][]string{
		{"views", "reach", "saved", "shares", "total_interactions"},
		{"video_views", "reach", "saved", "shares"},
		{"video_views", "reach", "saved"},
		{"impressions", "reach", "saved"},
		{"reach", "saved"},
	}

	carouselCombinations = [][]string{
		{"reach", "saved", "shares", "total_interactions"},
		{"carousel_album_impressions", "carousel_album_reach", "carousel_album_saved"},
		{"reach", "saved"},
	}

	imageCombinations = [][]string{
		{"views", "reach", "saved", "shares", "total_interactions"},
		{"impressions", "reach", "saved", "shares"},
		{"reach", "saved"},
	}
)

func metricCombinations(kind string, isReel bool) [][]string {
	if isReel {
		return reelCombinations
	}
	switch kind {
	case model.MediaKindStory:
		return storyCombinations
	case model.MediaKindVideo:
		return videoCombinations
	case model.MediaKindCarousel:
		return carouselCombinations
	default:
		return imageCombinations
	}
}

// fetchInsights walks the combination ladder for one media item. A failed or
// empty combination falls through to the next; exhaustion yields an empty
// bag and no error so the caller degrades the item instead of the batch.
// Token rejection is the one fatal case.
func (uc *implUseCase) fetchInsights(ctx context.Context, accessToken string, media model.Media) (insights.RawMetricBag, error) {
	combinations := metricCombinations(media.Kind, media.IsReel)

	for _, combo := range combinations {
		bag, err := uc.graphClient.GetMediaInsights(ctx, media.ID, accessToken, combo)
		if err != nil {
			if errors.Is(err, graphapi.ErrTokenInvalid) {
				return nil, insights.ErrTokenExpired
			}
			uc.l.Debugf(ctx, "insights.usecase.fetchInsights: media %s combination %v failed: %v", media.ID, combo, err)
			continue
		}
		if len(bag) == 0 {
			uc.l.Debugf(ctx, "insights.usecase.fetchInsights: media %s combination %v returned no values", media.ID, combo)
			continue
		}
		return insights.RawMetricBag(bag), nil
	}

	uc.l.Warnf(ctx, "insights.usecase.fetchInsights: media %s exhausted all metric combinations", media.ID)
	return insights.RawMetricBag{}, nil
}
