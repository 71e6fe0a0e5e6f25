package repository

import (
	"time"

	"insight-srv/internal/insights"
	"insight-srv/pkg/paginator"
)

// ListOptions filters the media-with-snapshot listing.
// Sort orders by a snapshot metric; the zero value orders by publish time.
type ListOptions struct {
	Kind     string
	Since    *time.Time
	Sort     insights.RankBy
	PagQuery paginator.PaginateQuery
}

// AggregateOptions bounds the dashboard aggregation window.
// Since is inclusive, Until exclusive.
type AggregateOptions struct {
	Since *time.Time
	Until *time.Time
}
