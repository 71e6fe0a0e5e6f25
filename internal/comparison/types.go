package comparison

import (
	"time"

	"insight-srv/internal/insights"
)

// DefaultPeriodDays is the comparison window when the caller does not pick one.
const DefaultPeriodDays = 30

// MetricChange compares one metric across two equal-length windows.
type MetricChange struct {
	Current       float64
	Previous      float64
	Change        float64
	ChangePercent float64
}

// Window is a half-open [Start, End) period.
type Window struct {
	Start time.Time
	End   time.Time
}

type GetSummaryInput struct {
	AccountID  string
	PeriodDays int
}

type GetSummaryOutput struct {
	CurrentWindow  Window
	PreviousWindow Window

	Current  insights.DashboardSummary
	Previous insights.DashboardSummary

	Views      MetricChange
	Reach      MetricChange
	Engagement MetricChange
	MediaCount MetricChange
}
