package usecase

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"insight-srv/internal/insights"
	"insight-srv/internal/model"
)

func fptr(v float64) *float64 { return &v }

func TestBuildCSV(t *testing.T) {
	published := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	items := []insights.MediaInsight{
		{
			Media: model.Media{
				ID:            "m1",
				Kind:          model.MediaKindImage,
				Permalink:     "https://instagram.com/p/m1",
				LikeCount:     10,
				CommentsCount: 2,
				Timestamp:     published,
			},
			Snapshot: model.InsightSnapshot{
				MediaID:    "m1",
				Views:      fptr(100),
				Reach:      fptr(80),
				Saves:      fptr(0),
				Engagement: 12,
				Score:      20,
				IsPartial:  true,
				MissingMetrics: []string{
					"shares",
				},
				HasInsights: true,
			},
		},
		{
			Media: model.Media{
				ID:        "m2",
				Kind:      model.MediaKindCarousel,
				Timestamp: published,
			},
			Snapshot: model.InsightSnapshot{MediaID: "m2"},
		},
	}

	body, rows, err := buildCSV(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 2 {
		t.Fatalf("expected 2 rows, got %d", rows)
	}

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 records, got %d", len(records))
	}

	header := records[0]
	col := func(name string) int {
		t.Helper()
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("header missing column %q", name)
		return -1
	}

	first := records[1]
	if first[col("media_id")] != "m1" {
		t.Errorf("expected media_id=m1, got %q", first[col("media_id")])
	}
	if first[col("views")] != "100" {
		t.Errorf("expected views=100, got %q", first[col("views")])
	}
	if first[col("saves")] != "0" {
		t.Errorf("measured zero must render as 0, got %q", first[col("saves")])
	}
	if first[col("shares")] != "" {
		t.Errorf("unknown metric must render as empty cell, got %q", first[col("shares")])
	}
	if first[col("missing_metrics")] != "shares" {
		t.Errorf("expected missing_metrics=shares, got %q", first[col("missing_metrics")])
	}
	if first[col("published_at")] != "2026-08-01T12:00:00Z" {
		t.Errorf("unexpected published_at %q", first[col("published_at")])
	}

	second := records[2]
	if second[col("views")] != "" || second[col("reach")] != "" {
		t.Errorf("snapshot without metrics must render empty cells: %v", second)
	}
	if second[col("has_insights")] != "false" {
		t.Errorf("expected has_insights=false, got %q", second[col("has_insights")])
	}
}

func TestBuildCSV_Empty(t *testing.T) {
	body, rows, err := buildCSV(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows, got %d", rows)
	}

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d records", len(records))
	}
}
