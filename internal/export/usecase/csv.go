package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"insight-srv/internal/insights"
)

var csvHeader = []string{
	"media_id", "kind", "is_reel", "permalink", "published_at",
	"like_count", "comments_count",
	"views", "reach", "saves", "shares", "total_interactions",
	"engagement", "score", "engagement_rate", "reach_rate", "views_rate",
	"is_partial", "missing_metrics", "has_insights",
}

// buildCSV renders media + snapshot rows. Unknown metrics render as empty
// cells so they stay distinguishable from measured zeros in spreadsheets.
func buildCSV(items []insights.MediaInsight) ([]byte, int, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, 0, fmt.Errorf("write header: %w", err)
	}

	for _, item := range items {
		m := item.Media
		s := item.Snapshot

		record := []string{
			m.ID,
			m.Kind,
			strconv.FormatBool(m.IsReel),
			m.Permalink,
			m.Timestamp.Format(time.RFC3339),
			strconv.FormatInt(m.LikeCount, 10),
			strconv.FormatInt(m.CommentsCount, 10),
			formatNullable(s.Views),
			formatNullable(s.Reach),
			formatNullable(s.Saves),
			formatNullable(s.Shares),
			formatNullable(s.TotalInteractions),
			strconv.FormatFloat(s.Engagement, 'f', -1, 64),
			strconv.FormatFloat(s.Score, 'f', 2, 64),
			formatNullable(s.EngagementRate),
			formatNullable(s.ReachRate),
			formatNullable(s.ViewsRate),
			strconv.FormatBool(s.IsPartial),
			strings.Join(s.MissingMetrics, ";"),
			strconv.FormatBool(s.HasInsights),
		}
		if err := w.Write(record); err != nil {
			return nil, 0, fmt.Errorf("write row %s: %w", m.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, 0, fmt.Errorf("flush: %w", err)
	}
	return buf.Bytes(), len(items), nil
}

func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
