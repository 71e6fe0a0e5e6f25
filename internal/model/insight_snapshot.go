package model

import "time"

// InsightSnapshot is the persisted normalization result for one media item.
// Canonical fields are pointers: nil means the provider returned no value
// under any accepted alias, which is distinct from a measured zero.
type InsightSnapshot struct {
	MediaID   string
	AccountID string

	// Canonical metrics
	Views             *float64
	Reach             *float64
	Saves             *float64
	Shares            *float64
	TotalInteractions *float64

	// Derived metrics
	Engagement               float64
	Score                    float64
	EngagementRate           *float64
	ReachRate                *float64
	ViewsRate                *float64
	InteractionsPer1000Reach *float64

	// Partialness
	IsPartial      bool
	MissingMetrics []string
	HasInsights    bool

	// Raw provider bag, preserved under original keys for export.
	Raw map[string]float64

	SyncedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
