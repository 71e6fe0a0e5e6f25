package usecase

import (
	"testing"

	"insight-srv/internal/insights"
	"insight-srv/internal/model"
)

func rankItem(id string, score float64, reach, views *float64) insights.MediaInsight {
	return insights.MediaInsight{
		Media: model.Media{ID: id},
		Snapshot: model.InsightSnapshot{
			MediaID: id,
			Score:   score,
			Reach:   reach,
			Views:   views,
		},
	}
}

func rankedIDs(items []insights.MediaInsight) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Media.ID)
	}
	return ids
}

func assertOrder(t *testing.T, got []insights.MediaInsight, want ...string) {
	t.Helper()
	ids := rankedIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("expected %d items, got %d (%v)", len(want), len(ids), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, ids)
		}
	}
}

func TestRank(t *testing.T) {
	t.Run("descending by score by default", func(t *testing.T) {
		items := []insights.MediaInsight{
			rankItem("a", 5, nil, nil),
			rankItem("b", 20, nil, nil),
			rankItem("c", 10, nil, nil),
		}
		assertOrder(t, Rank(items, insights.RankByScore), "b", "c", "a")
	})

	t.Run("by reach", func(t *testing.T) {
		items := []insights.MediaInsight{
			rankItem("a", 100, fptr(10), nil),
			rankItem("b", 1, fptr(500), nil),
		}
		assertOrder(t, Rank(items, insights.RankByReach), "b", "a")
	})

	t.Run("by views", func(t *testing.T) {
		items := []insights.MediaInsight{
			rankItem("a", 0, nil, fptr(3)),
			rankItem("b", 0, nil, fptr(30)),
			rankItem("c", 0, nil, fptr(7)),
		}
		assertOrder(t, Rank(items, insights.RankByViews), "b", "c", "a")
	})

	t.Run("nil metric sorts below measured zero", func(t *testing.T) {
		items := []insights.MediaInsight{
			rankItem("missing", 0, nil, nil),
			rankItem("zero", 0, fptr(0), nil),
			rankItem("some", 0, fptr(1), nil),
		}
		assertOrder(t, Rank(items, insights.RankByReach), "some", "zero", "missing")
	})

	t.Run("ties keep input order", func(t *testing.T) {
		items := []insights.MediaInsight{
			rankItem("first", 10, nil, nil),
			rankItem("second", 10, nil, nil),
			rankItem("third", 10, nil, nil),
		}
		assertOrder(t, Rank(items, insights.RankByScore), "first", "second", "third")
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		items := []insights.MediaInsight{
			rankItem("a", 1, nil, nil),
			rankItem("b", 2, nil, nil),
		}
		_ = Rank(items, insights.RankByScore)
		if items[0].Media.ID != "a" || items[1].Media.ID != "b" {
			t.Fatalf("input slice mutated: %v", rankedIDs(items))
		}
	})
}
