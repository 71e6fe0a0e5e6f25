package graphapi

import (
	"time"

	pkghttp "insight-srv/pkg/http"
)

// Config holds configuration for the Graph API client.
type Config struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// Profile is the business account profile subset the dashboard needs.
type Profile struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	FollowersCount    int64  `json:"followers_count"`
	MediaCount        int64  `json:"media_count"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// MediaItem is one media object from the media edge.
type MediaItem struct {
	ID               string    `json:"id"`
	MediaType        string    `json:"media_type"`         // IMAGE | VIDEO | CAROUSEL_ALBUM
	MediaProductType string    `json:"media_product_type"` // FEED | REELS | STORY
	Caption          string    `json:"caption"`
	Permalink        string    `json:"permalink"`
	MediaURL         string    `json:"media_url"`
	LikeCount        int64     `json:"like_count"`
	CommentsCount    int64     `json:"comments_count"`
	Timestamp        time.Time `json:"-"`

	RawTimestamp string `json:"timestamp"`
}

// clientImpl implements IClient.
type clientImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}

// mediaListResponse is the Graph media edge envelope.
type mediaListResponse struct {
	Data []MediaItem `json:"data"`
}

// insightsResponse is the Graph insights envelope.
type insightsResponse struct {
	Data []insightEntry `json:"data"`
}

type insightEntry struct {
	Name   string         `json:"name"`
	Period string         `json:"period"`
	Values []insightValue `json:"values"`
}

type insightValue struct {
	Value float64 `json:"value"`
}

// errorResponse is the Graph error envelope.
type errorResponse struct {
	Error *graphError `json:"error"`
}

type graphError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	Subcode   int    `json:"error_subcode"`
	FBTraceID string `json:"fbtrace_id"`
}
