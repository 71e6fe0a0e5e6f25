package model

import "time"

// Media kinds as reported by the Graph API.
const (
	MediaKindImage    = "IMAGE"
	MediaKindVideo    = "VIDEO"
	MediaKindCarousel = "CAROUSEL_ALBUM"
	MediaKindStory    = "STORY"
)

// Media is one cached content item (post, reel, or story) of an account.
// Like and comment counts come from the media object itself, never from
// the insights endpoint.
type Media struct {
	ID        string // Graph media id
	AccountID string

	Kind   string
	IsReel bool

	Caption   string
	Permalink string
	MediaURL  string

	LikeCount     int64
	CommentsCount int64

	Timestamp time.Time // publish time on the platform
	CreatedAt time.Time
	UpdatedAt time.Time
}
