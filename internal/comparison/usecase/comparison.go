package usecase

import (
	"context"
	"fmt"
	"time"

	"insight-srv/internal/comparison"
	insightsRepo "insight-srv/internal/insights/repository"
	"insight-srv/internal/model"
	"insight-srv/pkg/util"
)

// maxPeriodDays caps the window so a typo cannot scan years of rows.
const maxPeriodDays = 365

// GetSummary compares the account's aggregates over two equal-length windows.
func (uc *implUseCase) GetSummary(ctx context.Context, sc model.Scope, input comparison.GetSummaryInput) (comparison.GetSummaryOutput, error) {
	// Step 1: Validate and default the window
	days := input.PeriodDays
	if days == 0 {
		days = comparison.DefaultPeriodDays
	}
	if days < 0 || days > maxPeriodDays {
		return comparison.GetSummaryOutput{}, comparison.ErrInvalidPeriod
	}

	// Step 2: Ownership
	if _, err := uc.accountUC.GetDetail(ctx, sc, input.AccountID); err != nil {
		return comparison.GetSummaryOutput{}, err
	}

	// Step 3: Aggregate both windows
	curStart, curEnd := util.PeriodWindow(time.Now(), days)
	prevStart, prevEnd := util.PreviousWindow(curStart, curEnd)

	current, err := uc.insightsRepo.AggregateSnapshots(ctx, input.AccountID, insightsRepo.AggregateOptions{
		Since: &curStart,
		Until: &curEnd,
	})
	if err != nil {
		return comparison.GetSummaryOutput{}, fmt.Errorf("failed to aggregate current window: %w", err)
	}

	previous, err := uc.insightsRepo.AggregateSnapshots(ctx, input.AccountID, insightsRepo.AggregateOptions{
		Since: &prevStart,
		Until: &prevEnd,
	})
	if err != nil {
		return comparison.GetSummaryOutput{}, fmt.Errorf("failed to aggregate previous window: %w", err)
	}

	// Step 4: Compute per-metric changes
	return comparison.GetSummaryOutput{
		CurrentWindow:  comparison.Window{Start: curStart, End: curEnd},
		PreviousWindow: comparison.Window{Start: prevStart, End: prevEnd},
		Current:        current,
		Previous:       previous,
		Views:          Compare(current.TotalViews, previous.TotalViews),
		Reach:          Compare(current.TotalReach, previous.TotalReach),
		Engagement:     Compare(current.TotalEngagement, previous.TotalEngagement),
		MediaCount:     Compare(float64(current.MediaCount), float64(previous.MediaCount)),
	}, nil
}

// Compare computes the change between two period values. A zero previous
// value cannot anchor a percentage, so growth from nothing reads as +100%
// and nothing-to-nothing reads as 0%.
func Compare(current, previous float64) comparison.MetricChange {
	change := current - previous

	var pct float64
	switch {
	case previous > 0:
		pct = change / previous * 100
	case current > 0:
		pct = 100
	default:
		pct = 0
	}

	return comparison.MetricChange{
		Current:       current,
		Previous:      previous,
		Change:        change,
		ChangePercent: pct,
	}
}
