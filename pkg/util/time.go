package util

import (
	"fmt"
	"time"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
)

// StrToDate parses a date string in DateFormat.
func StrToDate(str string) (time.Time, error) {
	t, err := time.Parse(DateFormat, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", str, err)
	}
	return t, nil
}

// PeriodWindow returns the [start, end) window covering the last n days,
// ending at the start of today in UTC.
func PeriodWindow(now time.Time, days int) (time.Time, time.Time) {
	end := now.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)
	return start, end
}

// PreviousWindow returns the window of the same length immediately before
// [start, end).
func PreviousWindow(start, end time.Time) (time.Time, time.Time) {
	length := end.Sub(start)
	return start.Add(-length), start
}

// DaysBetween returns the number of whole days in [start, end).
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
