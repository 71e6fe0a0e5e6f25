package account

import (
	"context"
	"time"

	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Connect validates the token against the provider, encrypts and stores
	// it, and creates or reactivates the account record.
	Connect(ctx context.Context, sc model.Scope, input ConnectInput) (ConnectOutput, error)

	// GetDetail returns one account owned by the caller.
	GetDetail(ctx context.Context, sc model.Scope, accountID string) (model.Account, error)

	// GetList returns the caller's connected accounts.
	GetList(ctx context.Context, sc model.Scope, input GetListInput) ([]model.Account, paginator.Paginator, error)

	// RefreshProfile re-reads profile fields (followers, media count,
	// picture) from the provider and persists them.
	RefreshProfile(ctx context.Context, sc model.Scope, accountID string) (model.Account, error)

	// Disconnect removes the account and its stored token.
	Disconnect(ctx context.Context, sc model.Scope, accountID string) error

	// GetByID loads an account without ownership checks. Internal use by
	// the sync consumer only.
	GetByID(ctx context.Context, accountID string) (model.Account, error)

	// GetAccessToken returns the decrypted Graph token. Internal use by the
	// sync consumer only; the token never crosses the HTTP surface.
	GetAccessToken(ctx context.Context, accountID string) (string, error)

	// MarkTokenExpired flags the account as needing reconnection.
	MarkTokenExpired(ctx context.Context, accountID string) error

	// MarkSynced records the completion time of the last successful sync.
	MarkSynced(ctx context.Context, accountID string, syncedAt time.Time) error
}
