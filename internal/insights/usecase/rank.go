package usecase

import (
	"sort"

	"insight-srv/internal/insights"
)

// Rank sorts items descending by the chosen key. The sort is stable and no
// secondary tie-break key exists: tied items keep their provider order, so
// identical input always produces identical output.
func Rank(items []insights.MediaInsight, by insights.RankBy) []insights.MediaInsight {
	ranked := make([]insights.MediaInsight, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankKey(ranked[i], by) > rankKey(ranked[j], by)
	})
	return ranked
}

// rankKey maps a snapshot to its ordering value. Items whose key metric was
// never resolved sort below any measured value, including zero.
func rankKey(item insights.MediaInsight, by insights.RankBy) float64 {
	switch by {
	case insights.RankByReach:
		return orNegative(item.Snapshot.Reach)
	case insights.RankByViews:
		return orNegative(item.Snapshot.Views)
	default:
		return item.Snapshot.Score
	}
}

func orNegative(v *float64) float64 {
	if v == nil {
		return -1
	}
	return *v
}
