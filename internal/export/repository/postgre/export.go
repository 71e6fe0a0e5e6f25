package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"insight-srv/internal/export/repository"
	"insight-srv/internal/model"
)

// Create - Insert a PROCESSING export row
func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Export, error) {
	query := `
		INSERT INTO insights.exports (id, account_id, requested_by, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`

	now := time.Now()
	exp := model.Export{
		ID:          uuid.New().String(),
		AccountID:   opt.AccountID,
		RequestedBy: opt.RequestedBy,
		Status:      model.ExportStatusProcessing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.db.ExecContext(ctx, query,
		exp.ID, exp.AccountID, exp.RequestedBy, exp.Status, now,
	); err != nil {
		return model.Export{}, fmt.Errorf("Create: exec: %w", err)
	}
	return exp, nil
}

// GetByID - Load one export row
func (r *implRepository) GetByID(ctx context.Context, id string) (model.Export, error) {
	query := `
		SELECT id, account_id, requested_by, status, error_message, object_key,
			file_size_bytes, row_count, completed_at, created_at, updated_at
		FROM insights.exports
		WHERE id = $1
	`

	var exp model.Export
	var completedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&exp.ID, &exp.AccountID, &exp.RequestedBy, &exp.Status, &exp.ErrorMessage,
		&exp.ObjectKey, &exp.FileSizeBytes, &exp.RowCount,
		&completedAt, &exp.CreatedAt, &exp.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Export{}, repository.ErrNotFound
		}
		return model.Export{}, fmt.Errorf("GetByID: scan: %w", err)
	}

	if completedAt.Valid {
		exp.CompletedAt = &completedAt.Time
	}
	return exp, nil
}

// MarkCompleted - Record the uploaded object and flip the status
func (r *implRepository) MarkCompleted(ctx context.Context, opt repository.MarkCompletedOptions) error {
	query := `
		UPDATE insights.exports
		SET status = $2, object_key = $3, file_size_bytes = $4, row_count = $5,
			completed_at = $6, updated_at = $6
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		opt.ID, model.ExportStatusCompleted, opt.ObjectKey, opt.FileSizeBytes, opt.RowCount, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("MarkCompleted: exec: %w", err)
	}
	return checkAffected(res, "MarkCompleted")
}

// MarkFailed - Record the failure reason
func (r *implRepository) MarkFailed(ctx context.Context, id, errorMessage string) error {
	query := `
		UPDATE insights.exports
		SET status = $2, error_message = $3, updated_at = $4
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, model.ExportStatusFailed, errorMessage, time.Now())
	if err != nil {
		return fmt.Errorf("MarkFailed: exec: %w", err)
	}
	return checkAffected(res, "MarkFailed")
}

func checkAffected(res sql.Result, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
