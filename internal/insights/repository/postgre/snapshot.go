package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"insight-srv/internal/insights"
	"insight-srv/internal/insights/repository"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"

	"github.com/lib/pq"
)

// UpsertSnapshots - Write snapshots keyed by (media_id, account_id), last write wins
func (r *implRepository) UpsertSnapshots(ctx context.Context, snapshots []model.InsightSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	query := `
		INSERT INTO insights.snapshots (media_id, account_id,
			views, reach, saves, shares, total_interactions,
			engagement, score, engagement_rate, reach_rate, views_rate, interactions_per_1000_reach,
			is_partial, missing_metrics, has_insights, raw,
			synced_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $19)
		ON CONFLICT (media_id, account_id) DO UPDATE SET
			views = EXCLUDED.views,
			reach = EXCLUDED.reach,
			saves = EXCLUDED.saves,
			shares = EXCLUDED.shares,
			total_interactions = EXCLUDED.total_interactions,
			engagement = EXCLUDED.engagement,
			score = EXCLUDED.score,
			engagement_rate = EXCLUDED.engagement_rate,
			reach_rate = EXCLUDED.reach_rate,
			views_rate = EXCLUDED.views_rate,
			interactions_per_1000_reach = EXCLUDED.interactions_per_1000_reach,
			is_partial = EXCLUDED.is_partial,
			missing_metrics = EXCLUDED.missing_metrics,
			has_insights = EXCLUDED.has_insights,
			raw = EXCLUDED.raw,
			synced_at = EXCLUDED.synced_at,
			updated_at = EXCLUDED.updated_at
	`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("UpsertSnapshots: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("UpsertSnapshots: prepare: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, s := range snapshots {
		rawJSON, err := json.Marshal(s.Raw)
		if err != nil {
			return fmt.Errorf("UpsertSnapshots: marshal raw for media %s: %w", s.MediaID, err)
		}

		if _, err := stmt.ExecContext(ctx,
			s.MediaID, s.AccountID,
			s.Views, s.Reach, s.Saves, s.Shares, s.TotalInteractions,
			s.Engagement, s.Score, s.EngagementRate, s.ReachRate, s.ViewsRate, s.InteractionsPer1000Reach,
			s.IsPartial, pq.Array(s.MissingMetrics), s.HasInsights, rawJSON,
			s.SyncedAt, now,
		); err != nil {
			return fmt.Errorf("UpsertSnapshots: exec media %s: %w", s.MediaID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("UpsertSnapshots: commit: %w", err)
	}
	return nil
}

// GetSnapshot - Load the latest snapshot for one media item
func (r *implRepository) GetSnapshot(ctx context.Context, accountID, mediaID string) (model.InsightSnapshot, error) {
	query := `
		SELECT media_id, account_id,
			views, reach, saves, shares, total_interactions,
			engagement, score, engagement_rate, reach_rate, views_rate, interactions_per_1000_reach,
			is_partial, missing_metrics, has_insights, raw,
			synced_at, created_at, updated_at
		FROM insights.snapshots
		WHERE account_id = $1 AND media_id = $2
	`

	s, err := scanSnapshot(r.db.QueryRowContext(ctx, query, accountID, mediaID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.InsightSnapshot{}, repository.ErrNotFound
		}
		return model.InsightSnapshot{}, fmt.Errorf("GetSnapshot: %w", err)
	}
	return s, nil
}

// ListMediaWithSnapshots - Join media with their latest snapshots
func (r *implRepository) ListMediaWithSnapshots(ctx context.Context, accountID string, opts repository.ListOptions) ([]insights.MediaInsight, paginator.Paginator, error) {
	where := "WHERE m.account_id = $1"
	args := []interface{}{accountID}
	argIdx := 2

	if opts.Kind != "" {
		where += fmt.Sprintf(" AND m.kind = $%d", argIdx)
		args = append(args, opts.Kind)
		argIdx++
	}
	if opts.Since != nil {
		where += fmt.Sprintf(" AND m.published_at >= $%d", argIdx)
		args = append(args, *opts.Since)
		argIdx++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM insights.media m " + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("ListMediaWithSnapshots: count: %w", err)
	}

	query := `
		SELECT m.id, m.account_id, m.kind, m.is_reel, m.caption, m.permalink, m.media_url,
			m.like_count, m.comments_count, m.published_at, m.created_at, m.updated_at,
			s.views, s.reach, s.saves, s.shares, s.total_interactions,
			s.engagement, s.score, s.engagement_rate, s.reach_rate, s.views_rate, s.interactions_per_1000_reach,
			s.is_partial, s.missing_metrics, s.has_insights, s.raw, s.synced_at
		FROM insights.media m
		LEFT JOIN insights.snapshots s ON s.media_id = m.id AND s.account_id = m.account_id
		` + where + orderClause(opts.Sort)

	pagQuery := opts.PagQuery
	if pagQuery.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, pagQuery.Limit, pagQuery.Offset())
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("ListMediaWithSnapshots: query: %w", err)
	}
	defer rows.Close()

	var items []insights.MediaInsight
	for rows.Next() {
		item, err := scanMediaInsight(rows)
		if err != nil {
			return nil, paginator.Paginator{}, fmt.Errorf("ListMediaWithSnapshots: scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("ListMediaWithSnapshots: rows: %w", err)
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(items)),
		PerPage:     pagQuery.Limit,
		CurrentPage: pagQuery.Page,
	}
	return items, pag, nil
}

// orderClause - Map a ranking key to its ORDER BY. NULLS LAST keeps unknown
// metrics below every measured value, including zero.
func orderClause(sort insights.RankBy) string {
	switch sort {
	case insights.RankByScore:
		return " ORDER BY s.score DESC NULLS LAST, m.published_at DESC"
	case insights.RankByReach:
		return " ORDER BY s.reach DESC NULLS LAST, m.published_at DESC"
	case insights.RankByViews:
		return " ORDER BY s.views DESC NULLS LAST, m.published_at DESC"
	default:
		return " ORDER BY m.published_at DESC"
	}
}

// AggregateSnapshots - Sum canonical metrics over a period window
func (r *implRepository) AggregateSnapshots(ctx context.Context, accountID string, opts repository.AggregateOptions) (insights.DashboardSummary, error) {
	where := "WHERE s.account_id = $1"
	args := []interface{}{accountID}
	argIdx := 2

	if opts.Since != nil {
		where += fmt.Sprintf(" AND m.published_at >= $%d", argIdx)
		args = append(args, *opts.Since)
		argIdx++
	}
	if opts.Until != nil {
		where += fmt.Sprintf(" AND m.published_at < $%d", argIdx)
		args = append(args, *opts.Until)
	}

	query := `
		SELECT COUNT(*),
			COALESCE(SUM(s.views), 0),
			COALESCE(SUM(s.reach), 0),
			COALESCE(SUM(s.engagement), 0),
			AVG(s.engagement_rate)
		FROM insights.snapshots s
		JOIN insights.media m ON m.id = s.media_id AND m.account_id = s.account_id
		` + where

	var summary insights.DashboardSummary
	var avgRate sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&summary.MediaCount, &summary.TotalViews, &summary.TotalReach, &summary.TotalEngagement, &avgRate,
	)
	if err != nil {
		return insights.DashboardSummary{}, fmt.Errorf("AggregateSnapshots: %w", err)
	}
	if avgRate.Valid {
		summary.AvgEngagementRate = &avgRate.Float64
	}
	return summary, nil
}
