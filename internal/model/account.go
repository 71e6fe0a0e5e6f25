package model

import "time"

// Token statuses for a connected account.
const (
	TokenStatusActive  = "ACTIVE"
	TokenStatusExpired = "EXPIRED"
)

// Account is a connected Instagram business account.
// The Graph access token is stored encrypted and never leaves the
// repository layer in plaintext.
type Account struct {
	ID       string
	IGUserID string
	Username string
	Name     string

	FollowersCount int64
	MediaCount     int64

	ProfilePictureURL string

	TokenStatus string // ACTIVE | EXPIRED
	ConnectedBy string

	LastSyncedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
