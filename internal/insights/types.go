package insights

import (
	"time"

	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

const (
	// MaxConcurrency bounds the per-batch fan-out of insight requests.
	MaxConcurrency = 50
	// DefaultMediaLimit is how many recent media objects a sync covers.
	DefaultMediaLimit = 50
	// DefaultPeriodDays is the dashboard window when none is given.
	DefaultPeriodDays = 30
)

// RawMetricBag is the heterogeneous name→value map returned by the provider
// for one content item. Ephemeral, one normalization call only.
type RawMetricBag map[string]float64

// ContentDescriptor carries the attributes needed to pick metric-name
// candidates. Likes and comments come from the content object itself and are
// never read from the bag.
type ContentDescriptor struct {
	Kind          string
	IsReel        bool
	LikeCount     int64
	CommentsCount int64
}

// CanonicalMetrics is the normalized output. A nil field means the provider
// exposed no alias for it; nil is never collapsed into 0.
type CanonicalMetrics struct {
	Views             *float64
	Reach             *float64
	Saves             *float64
	Shares            *float64
	TotalInteractions *float64

	// Raw preserves every input key for export and forward compatibility.
	Raw RawMetricBag
}

// DerivedMetrics holds the aggregates computed from canonical fields.
// Sums treat nil as 0; ratios propagate nil instead.
type DerivedMetrics struct {
	Engagement float64
	Score      float64

	EngagementRate           *float64
	ReachRate                *float64
	ViewsRate                *float64
	InteractionsPer1000Reach *float64
}

// Partialness reports which expected fields could not be resolved.
type Partialness struct {
	IsPartial      bool
	MissingMetrics []string
	HasInsights    bool
}

// NormalizedInsight bundles one normalization result.
type NormalizedInsight struct {
	Canonical CanonicalMetrics
	Derived   DerivedMetrics
	Partial   Partialness
}

// ScoreWeights are the editorial ranking weights for the score aggregate.
type ScoreWeights struct {
	Like    float64
	Comment float64
	Save    float64
	Share   float64
}

// RankBy selects the ordering key for top-content lists.
type RankBy string

const (
	RankByScore RankBy = "score"
	RankByReach RankBy = "reach"
	RankByViews RankBy = "views"
)

type GetDashboardInput struct {
	AccountID  string
	PeriodDays int
}

type GetDashboardOutput struct {
	Account      model.Account
	Summary      DashboardSummary
	TopContent   []MediaInsight
	PartialCount int
	SyncedAt     *time.Time
	CacheHit     bool
}

// DashboardSummary aggregates the account's media over the period.
type DashboardSummary struct {
	MediaCount        int64
	TotalViews        float64
	TotalReach        float64
	TotalEngagement   float64
	AvgEngagementRate *float64
}

// MediaInsight pairs a media object with its normalized insight snapshot.
type MediaInsight struct {
	Media    model.Media
	Snapshot model.InsightSnapshot
}

type GetMediaListInput struct {
	AccountID string
	Kind      string
	Sort      RankBy
	PagQuery  paginator.PaginateQuery
}

type GetMediaListOutput struct {
	Items     []MediaInsight
	Paginator paginator.Paginator
	CacheHit  bool
}

type GetMediaInsightsInput struct {
	AccountID string
	MediaID   string
}

type GetMediaInsightsOutput struct {
	Item MediaInsight
}

type GetTopContentInput struct {
	AccountID string
	RankBy    RankBy
	Limit     int
}

type GetTopContentOutput struct {
	Items []MediaInsight
}

type RequestSyncInput struct {
	AccountID string
}

type RequestSyncOutput struct {
	JobID       string
	RequestedAt time.Time
}

// SyncJob is one unit of work consumed from the sync pipeline.
type SyncJob struct {
	JobID       string
	AccountID   string
	UserID      string
	RequestedAt time.Time
}

// SyncResult summarizes a completed sync for the completion event.
type SyncResult struct {
	JobID        string
	AccountID    string
	MediaCount   int
	PartialCount int
	FailedCount  int
	SyncedAt     time.Time
}
