package graphapi

import "context"

// IClient defines the interface for the Meta Graph API client.
// Implementations are safe for concurrent use.
type IClient interface {
	// GetProfile fetches the business account profile (followers, media count).
	GetProfile(ctx context.Context, igUserID, accessToken string) (*Profile, error)
	// GetMediaList fetches the account's media objects, newest first.
	GetMediaList(ctx context.Context, igUserID, accessToken string, limit int) ([]MediaItem, error)
	// GetStories fetches the account's active stories.
	GetStories(ctx context.Context, igUserID, accessToken string) ([]MediaItem, error)
	// GetMediaInsights fetches insight values for one media object.
	// The metrics slice is the comma-joined metric-name combination; requesting
	// a name that is invalid for the media's kind fails the whole call.
	GetMediaInsights(ctx context.Context, mediaID, accessToken string, metrics []string) (map[string]float64, error)
}

// New creates a new Graph API client. Returns the interface.
func New(cfg Config) IClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &clientImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
