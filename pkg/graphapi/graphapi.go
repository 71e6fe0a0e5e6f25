package graphapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

func (c *clientImpl) buildURL(path string, params url.Values) string {
	return fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())
}

// decode unmarshals a Graph response, converting error envelopes into
// classified errors first.
func decode(body []byte, statusCode int, out interface{}) error {
	if statusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
			return newGraphError(statusCode, errResp.Error)
		}
		return &RequestError{StatusCode: statusCode, Message: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal Graph response: %w", err)
	}
	return nil
}

// GetProfile fetches the business account profile.
func (c *clientImpl) GetProfile(ctx context.Context, igUserID, accessToken string) (*Profile, error) {
	params := url.Values{}
	params.Set("fields", profileFields)
	params.Set("access_token", accessToken)

	body, statusCode, err := c.httpClient.Get(ctx, c.buildURL(igUserID, params), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile Profile
	if err := decode(body, statusCode, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetMediaList fetches the account's media objects, newest first.
func (c *clientImpl) GetMediaList(ctx context.Context, igUserID, accessToken string, limit int) ([]MediaItem, error) {
	params := url.Values{}
	params.Set("fields", mediaFields)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("access_token", accessToken)

	body, statusCode, err := c.httpClient.Get(ctx, c.buildURL(igUserID+"/media", params), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get media list: %w", err)
	}

	var resp mediaListResponse
	if err := decode(body, statusCode, &resp); err != nil {
		return nil, err
	}
	return parseTimestamps(resp.Data), nil
}

// GetStories fetches the account's active stories.
func (c *clientImpl) GetStories(ctx context.Context, igUserID, accessToken string) ([]MediaItem, error) {
	params := url.Values{}
	params.Set("fields", mediaFields)
	params.Set("access_token", accessToken)

	body, statusCode, err := c.httpClient.Get(ctx, c.buildURL(igUserID+"/stories", params), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get stories: %w", err)
	}

	var resp mediaListResponse
	if err := decode(body, statusCode, &resp); err != nil {
		return nil, err
	}
	return parseTimestamps(resp.Data), nil
}

// GetMediaInsights fetches insight values for one media object. Returns the
// raw name→value bag; an OK response with no values yields ErrEmptyResult so
// callers can fall through to the next metric combination.
func (c *clientImpl) GetMediaInsights(ctx context.Context, mediaID, accessToken string, metrics []string) (map[string]float64, error) {
	params := url.Values{}
	params.Set("metric", strings.Join(metrics, ","))
	params.Set("access_token", accessToken)

	body, statusCode, err := c.httpClient.Get(ctx, c.buildURL(mediaID+"/insights", params), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get media insights: %w", err)
	}

	var resp insightsResponse
	if err := decode(body, statusCode, &resp); err != nil {
		return nil, err
	}

	bag := make(map[string]float64, len(resp.Data))
	for _, entry := range resp.Data {
		if len(entry.Values) == 0 {
			continue
		}
		bag[entry.Name] = entry.Values[0].Value
	}
	if len(bag) == 0 {
		return nil, ErrEmptyResult
	}
	return bag, nil
}

func parseTimestamps(items []MediaItem) []MediaItem {
	for i := range items {
		if items[i].RawTimestamp == "" {
			continue
		}
		if t, err := time.Parse(graphTimeFormat, items[i].RawTimestamp); err == nil {
			items[i].Timestamp = t
		}
	}
	return items
}
