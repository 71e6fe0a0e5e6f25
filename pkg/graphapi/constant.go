package graphapi

import (
	"time"

	pkghttp "insight-srv/pkg/http"
)

const (
	// DefaultBaseURL is the Graph API endpoint (pinned version: metric names
	// differ across versions, which is what the alias ladder absorbs).
	DefaultBaseURL = "https://graph.facebook.com/v21.0"

	// DefaultTimeout is the default HTTP client timeout for Graph calls.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 2
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 1 * time.Second
)

// Graph OAuth error classification.
const (
	errTypeOAuth        = "OAuthException"
	errCodeInvalidToken = 190
)

// mediaFields is the field list requested from the media edge. Like and
// comment counts come from here, never from insights.
const mediaFields = "id,media_type,media_product_type,caption,permalink,media_url,like_count,comments_count,timestamp"

// profileFields is the field list requested for the account profile.
const profileFields = "id,username,name,followers_count,media_count,profile_picture_url"

// graphTimeFormat is the timestamp layout Graph returns on media objects.
const graphTimeFormat = "2006-01-02T15:04:05-0700"

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}
