package usecase

import (
	"insight-srv/internal/insights"
	"insight-srv/internal/model"
)

// Alias priority per canonical field. The provider renamed metrics across
// API versions and content kinds; first present value wins, values are
// never summed or averaged. The order is policy: it must stay stable so
// historical comparisons remain consistent.
var (
	viewsAliases        = []string{"views", "plays", "video_views", "impressions", "carousel_album_impressions"}
	reachAliases        = []string{"reach", "carousel_album_reach"}
	savesAliases        = []string{"saved", "saves", "carousel_album_saved"}
	sharesAliases       = []string{"shares"}
	interactionsAliases = []string{"total_interactions", "engagement"}
)

// Canonical field names, in the order they are reported as missing.
const (
	fieldViews  = "views"
	fieldReach  = "reach"
	fieldSaves  = "saves"
	fieldShares = "shares"
)

// Normalize reconciles one raw provider bag into canonical metrics, derived
// aggregates, and a partialness flag. Pure function: no I/O, inputs are not
// mutated, normalizing the same bag twice yields identical output.
func Normalize(bag insights.RawMetricBag, desc insights.ContentDescriptor, followersCount int64, w insights.ScoreWeights) insights.NormalizedInsight {
	canonical := resolveCanonical(bag)
	derived := deriveMetrics(canonical, desc, followersCount, w)
	partial := determinePartialness(bag, canonical, desc)

	return insights.NormalizedInsight{
		Canonical: canonical,
		Derived:   derived,
		Partial:   partial,
	}
}

func resolveCanonical(bag insights.RawMetricBag) insights.CanonicalMetrics {
	raw := make(insights.RawMetricBag, len(bag))
	for k, v := range bag {
		raw[k] = v
	}

	return insights.CanonicalMetrics{
		Views:             resolveAlias(bag, viewsAliases),
		Reach:             resolveAlias(bag, reachAliases),
		Saves:             resolveAlias(bag, savesAliases),
		Shares:            resolveAlias(bag, sharesAliases),
		TotalInteractions: resolveAlias(bag, interactionsAliases),
		Raw:               raw,
	}
}

// resolveAlias returns the first present alias value, or nil when no alias
// is present. nil is never collapsed into 0: "no data" must stay
// distinguishable from a measured zero.
func resolveAlias(bag insights.RawMetricBag, aliases []string) *float64 {
	for _, name := range aliases {
		if v, ok := bag[name]; ok {
			value := v
			return &value
		}
	}
	return nil
}

func deriveMetrics(c insights.CanonicalMetrics, desc insights.ContentDescriptor, followersCount int64, w insights.ScoreWeights) insights.DerivedMetrics {
	likes := float64(desc.LikeCount)
	comments := float64(desc.CommentsCount)

	// Sums treat nil as 0; ratios below propagate nil instead.
	engagement := likes + comments + orZero(c.Saves) + orZero(c.Shares)
	score := likes*w.Like + comments*w.Comment + orZero(c.Saves)*w.Save + orZero(c.Shares)*w.Share

	d := insights.DerivedMetrics{
		Engagement: engagement,
		Score:      score,
	}

	if followersCount > 0 {
		d.EngagementRate = ptr(engagement / float64(followersCount) * 100)
		if c.Reach != nil {
			d.ReachRate = ptr(*c.Reach / float64(followersCount) * 100)
		}
	}

	if c.Reach != nil && *c.Reach > 0 {
		if c.Views != nil {
			d.ViewsRate = ptr(*c.Views / *c.Reach * 100)
		}
		d.InteractionsPer1000Reach = ptr(engagement / *c.Reach * 1000)
	}

	return d
}

// determinePartialness compares the required canonical set for this content
// kind against what was actually resolved. Views is structurally
// inapplicable for carousels, so it is not required there.
func determinePartialness(bag insights.RawMetricBag, c insights.CanonicalMetrics, desc insights.ContentDescriptor) insights.Partialness {
	var missing []string

	if desc.Kind != model.MediaKindCarousel && c.Views == nil {
		missing = append(missing, fieldViews)
	}
	if c.Reach == nil {
		missing = append(missing, fieldReach)
	}
	if c.Saves == nil {
		missing = append(missing, fieldSaves)
	}
	if c.Shares == nil {
		missing = append(missing, fieldShares)
	}

	return insights.Partialness{
		IsPartial:      len(missing) > 0,
		MissingMetrics: missing,
		HasInsights:    len(bag) > 0,
	}
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func ptr(v float64) *float64 {
	return &v
}
