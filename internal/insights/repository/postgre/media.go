package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"insight-srv/internal/insights/repository"
	"insight-srv/internal/model"
)

// UpsertMedia - Write media rows, last write wins by media id
func (r *implRepository) UpsertMedia(ctx context.Context, items []model.Media) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO insights.media (id, account_id, kind, is_reel, caption, permalink, media_url,
			like_count, comments_count, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		ON CONFLICT (id) DO UPDATE SET
			kind = EXCLUDED.kind,
			is_reel = EXCLUDED.is_reel,
			caption = EXCLUDED.caption,
			permalink = EXCLUDED.permalink,
			media_url = EXCLUDED.media_url,
			like_count = EXCLUDED.like_count,
			comments_count = EXCLUDED.comments_count,
			published_at = EXCLUDED.published_at,
			updated_at = EXCLUDED.updated_at
	`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("UpsertMedia: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("UpsertMedia: prepare: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, m := range items {
		if _, err := stmt.ExecContext(ctx,
			m.ID, m.AccountID, m.Kind, m.IsReel, m.Caption, m.Permalink, m.MediaURL,
			m.LikeCount, m.CommentsCount, m.Timestamp, now,
		); err != nil {
			return fmt.Errorf("UpsertMedia: exec media %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("UpsertMedia: commit: %w", err)
	}
	return nil
}

// GetMedia - Load one media row scoped to the account
func (r *implRepository) GetMedia(ctx context.Context, accountID, mediaID string) (model.Media, error) {
	query := `
		SELECT id, account_id, kind, is_reel, caption, permalink, media_url,
			like_count, comments_count, published_at, created_at, updated_at
		FROM insights.media
		WHERE account_id = $1 AND id = $2
	`

	var m model.Media
	err := r.db.QueryRowContext(ctx, query, accountID, mediaID).Scan(
		&m.ID, &m.AccountID, &m.Kind, &m.IsReel, &m.Caption, &m.Permalink, &m.MediaURL,
		&m.LikeCount, &m.CommentsCount, &m.Timestamp, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Media{}, repository.ErrNotFound
		}
		return model.Media{}, fmt.Errorf("GetMedia: %w", err)
	}
	return m, nil
}
