package util

import (
	"testing"
	"time"
)

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2026, 8, 25, 15, 30, 0, 0, time.UTC)

	start, end := PeriodWindow(now, 30)

	wantEnd := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	if !end.Equal(wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, end)
	}
	if !start.Equal(wantEnd.AddDate(0, 0, -30)) {
		t.Errorf("expected start 30 days before end, got %v", start)
	}
	if DaysBetween(start, end) != 30 {
		t.Errorf("expected 30-day window, got %d", DaysBetween(start, end))
	}
}

func TestPreviousWindow(t *testing.T) {
	start := time.Date(2026, 7, 26, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	prevStart, prevEnd := PreviousWindow(start, end)

	if !prevEnd.Equal(start) {
		t.Errorf("previous window must end where the current one starts, got %v", prevEnd)
	}
	if !prevStart.Equal(start.AddDate(0, 0, -30)) {
		t.Errorf("expected previous start %v, got %v", start.AddDate(0, 0, -30), prevStart)
	}
	if DaysBetween(prevStart, prevEnd) != DaysBetween(start, end) {
		t.Error("windows must have equal length")
	}
}

func TestStrToDate(t *testing.T) {
	got, err := StrToDate("2026-08-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected time %v", got)
	}

	if _, err := StrToDate("25/08/2026"); err == nil {
		t.Error("expected error for wrong format")
	}
}
