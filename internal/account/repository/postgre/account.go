package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"insight-srv/internal/account/repository"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

const accountColumns = `id, ig_user_id, username, name, followers_count, media_count,
		profile_picture_url, token_status, connected_by, last_synced_at, created_at, updated_at`

// Create - Insert a new account row with its encrypted token
func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Account, error) {
	query := `
		INSERT INTO insights.accounts (id, ig_user_id, username, name, followers_count, media_count,
			profile_picture_url, access_token_enc, token_status, connected_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
	`

	now := time.Now()
	acc := model.Account{
		ID:                uuid.New().String(),
		IGUserID:          opt.IGUserID,
		Username:          opt.Username,
		Name:              opt.Name,
		FollowersCount:    opt.FollowersCount,
		MediaCount:        opt.MediaCount,
		ProfilePictureURL: opt.ProfilePictureURL,
		TokenStatus:       model.TokenStatusActive,
		ConnectedBy:       opt.ConnectedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := r.db.ExecContext(ctx, query,
		acc.ID, acc.IGUserID, acc.Username, acc.Name, acc.FollowersCount, acc.MediaCount,
		acc.ProfilePictureURL, opt.EncryptedToken, acc.TokenStatus, acc.ConnectedBy, now,
	); err != nil {
		return model.Account{}, fmt.Errorf("Create: exec: %w", err)
	}

	return acc, nil
}

// GetByID - Load one account row by internal ID
func (r *implRepository) GetByID(ctx context.Context, id string) (model.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM insights.accounts WHERE id = $1`, accountColumns)

	acc, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, repository.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("GetByID: scan: %w", err)
	}
	return acc, nil
}

// GetByIGUserID - Load one account row by provider-side user ID
func (r *implRepository) GetByIGUserID(ctx context.Context, igUserID string) (model.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM insights.accounts WHERE ig_user_id = $1`, accountColumns)

	acc, err := scanAccount(r.db.QueryRowContext(ctx, query, igUserID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, repository.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("GetByIGUserID: scan: %w", err)
	}
	return acc, nil
}

// List - Accounts connected by one user, newest first
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Account, paginator.Paginator, error) {
	pag := opt.PagQuery
	pag.Adjust()

	var total int64
	countQuery := `SELECT COUNT(*) FROM insights.accounts WHERE connected_by = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, opt.ConnectedBy).Scan(&total); err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("List: count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM insights.accounts
		WHERE connected_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, accountColumns)

	rows, err := r.db.QueryContext(ctx, query, opt.ConnectedBy, pag.Limit, pag.Offset())
	if err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("List: query: %w", err)
	}
	defer rows.Close()

	accounts := make([]model.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, paginator.Paginator{}, fmt.Errorf("List: scan: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("List: rows: %w", err)
	}

	return accounts, paginator.Paginator{
		Total:       total,
		Count:       int64(len(accounts)),
		PerPage:     pag.Limit,
		CurrentPage: pag.Page,
	}, nil
}

// UpdateProfile - Overwrite the provider-sourced profile fields
func (r *implRepository) UpdateProfile(ctx context.Context, id string, opt repository.UpdateProfileOptions) error {
	query := `
		UPDATE insights.accounts
		SET username = $2, name = $3, followers_count = $4, media_count = $5,
			profile_picture_url = $6, updated_at = $7
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		id, opt.Username, opt.Name, opt.FollowersCount, opt.MediaCount,
		opt.ProfilePictureURL, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("UpdateProfile: exec: %w", err)
	}
	return checkAffected(res, "UpdateProfile")
}

// UpdateToken - Replace the encrypted token, status back to ACTIVE
func (r *implRepository) UpdateToken(ctx context.Context, id, encryptedToken string) error {
	query := `
		UPDATE insights.accounts
		SET access_token_enc = $2, token_status = $3, updated_at = $4
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, encryptedToken, model.TokenStatusActive, time.Now())
	if err != nil {
		return fmt.Errorf("UpdateToken: exec: %w", err)
	}
	return checkAffected(res, "UpdateToken")
}

// UpdateTokenStatus - Set the token status
func (r *implRepository) UpdateTokenStatus(ctx context.Context, id, status string) error {
	query := `
		UPDATE insights.accounts
		SET token_status = $2, updated_at = $3
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("UpdateTokenStatus: exec: %w", err)
	}
	return checkAffected(res, "UpdateTokenStatus")
}

// UpdateLastSyncedAt - Record a sync completion
func (r *implRepository) UpdateLastSyncedAt(ctx context.Context, opt repository.UpdateLastSyncedAtOptions) error {
	query := `
		UPDATE insights.accounts
		SET last_synced_at = $2, updated_at = $3
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, opt.ID, opt.SyncedAt, time.Now())
	if err != nil {
		return fmt.Errorf("UpdateLastSyncedAt: exec: %w", err)
	}
	return checkAffected(res, "UpdateLastSyncedAt")
}

// GetEncryptedToken - Stored ciphertext of the account token
func (r *implRepository) GetEncryptedToken(ctx context.Context, id string) (string, error) {
	query := `SELECT access_token_enc FROM insights.accounts WHERE id = $1`

	var enc string
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&enc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repository.ErrNotFound
		}
		return "", fmt.Errorf("GetEncryptedToken: scan: %w", err)
	}
	return enc, nil
}

// Delete - Remove the account row. Media and snapshots cascade via FK.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM insights.accounts WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: exec: %w", err)
	}
	return checkAffected(res, "Delete")
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
