package repository

import (
	"context"

	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	// Create inserts a new account row with its encrypted token.
	Create(ctx context.Context, opt CreateOptions) (model.Account, error)

	// GetByID loads one account by its internal ID.
	GetByID(ctx context.Context, id string) (model.Account, error)

	// GetByIGUserID loads one account by the provider-side user ID.
	GetByIGUserID(ctx context.Context, igUserID string) (model.Account, error)

	// List returns accounts connected by one user, newest first.
	List(ctx context.Context, opt ListOptions) ([]model.Account, paginator.Paginator, error)

	// UpdateProfile overwrites the provider-sourced profile fields.
	UpdateProfile(ctx context.Context, id string, opt UpdateProfileOptions) error

	// UpdateToken replaces the encrypted token and resets the status to ACTIVE.
	UpdateToken(ctx context.Context, id, encryptedToken string) error

	// UpdateTokenStatus sets the token status.
	UpdateTokenStatus(ctx context.Context, id, status string) error

	// UpdateLastSyncedAt records the completion of a sync run.
	UpdateLastSyncedAt(ctx context.Context, opt UpdateLastSyncedAtOptions) error

	// GetEncryptedToken returns the stored ciphertext of the token.
	GetEncryptedToken(ctx context.Context, id string) (string, error)

	// Delete removes the account row (and its token with it).
	Delete(ctx context.Context, id string) error
}
