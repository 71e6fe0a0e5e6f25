package repository

import (
	"time"

	"insight-srv/pkg/paginator"
)

// CreateOptions carries the fields for a new account row.
type CreateOptions struct {
	IGUserID          string
	Username          string
	Name              string
	FollowersCount    int64
	MediaCount        int64
	ProfilePictureURL string
	EncryptedToken    string
	ConnectedBy       string
}

// ListOptions filters the account list.
type ListOptions struct {
	ConnectedBy string
	PagQuery    paginator.PaginateQuery
}

// UpdateProfileOptions carries the provider-sourced profile fields.
type UpdateProfileOptions struct {
	Username          string
	Name              string
	FollowersCount    int64
	MediaCount        int64
	ProfilePictureURL string
}

// UpdateLastSyncedAtOptions records a sync completion.
type UpdateLastSyncedAtOptions struct {
	ID       string
	SyncedAt time.Time
}
