package postgre

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"insight-srv/internal/insights"
	"insight-srv/internal/model"

	"github.com/lib/pq"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row rowScanner) (model.InsightSnapshot, error) {
	var s model.InsightSnapshot
	var missing pq.StringArray
	var rawJSON []byte

	err := row.Scan(
		&s.MediaID, &s.AccountID,
		&s.Views, &s.Reach, &s.Saves, &s.Shares, &s.TotalInteractions,
		&s.Engagement, &s.Score, &s.EngagementRate, &s.ReachRate, &s.ViewsRate, &s.InteractionsPer1000Reach,
		&s.IsPartial, &missing, &s.HasInsights, &rawJSON,
		&s.SyncedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return model.InsightSnapshot{}, err
	}

	s.MissingMetrics = missing
	if len(rawJSON) > 0 {
		if err := json.Unmarshal(rawJSON, &s.Raw); err != nil {
			return model.InsightSnapshot{}, fmt.Errorf("unmarshal raw bag: %w", err)
		}
	}
	return s, nil
}

// scanMediaInsight scans a media row left-joined with its snapshot. A media
// item without a snapshot yet comes back with all snapshot columns NULL.
func scanMediaInsight(row rowScanner) (insights.MediaInsight, error) {
	var m model.Media
	var s model.InsightSnapshot
	var missing pq.StringArray
	var rawJSON []byte
	var (
		engagement sql.NullFloat64
		score      sql.NullFloat64
		isPartial  sql.NullBool
		hasIns     sql.NullBool
		syncedAt   sql.NullTime
	)

	err := row.Scan(
		&m.ID, &m.AccountID, &m.Kind, &m.IsReel, &m.Caption, &m.Permalink, &m.MediaURL,
		&m.LikeCount, &m.CommentsCount, &m.Timestamp, &m.CreatedAt, &m.UpdatedAt,
		&s.Views, &s.Reach, &s.Saves, &s.Shares, &s.TotalInteractions,
		&engagement, &score, &s.EngagementRate, &s.ReachRate, &s.ViewsRate, &s.InteractionsPer1000Reach,
		&isPartial, &missing, &hasIns, &rawJSON, &syncedAt,
	)
	if err != nil {
		return insights.MediaInsight{}, err
	}

	s.MediaID = m.ID
	s.AccountID = m.AccountID
	s.Engagement = engagement.Float64
	s.Score = score.Float64
	s.IsPartial = isPartial.Bool
	s.HasInsights = hasIns.Bool
	s.MissingMetrics = missing
	if syncedAt.Valid {
		s.SyncedAt = syncedAt.Time
	}
	if len(rawJSON) > 0 {
		if err := json.Unmarshal(rawJSON, &s.Raw); err != nil {
			return insights.MediaInsight{}, fmt.Errorf("unmarshal raw bag: %w", err)
		}
	}

	return insights.MediaInsight{Media: m, Snapshot: s}, nil
}
