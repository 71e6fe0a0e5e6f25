package usecase

import (
	"math"
	"reflect"
	"testing"

	"insight-srv/internal/insights"
	"insight-srv/internal/model"
)

var testWeights = insights.ScoreWeights{Like: 1, Comment: 2, Save: 3, Share: 4}

func fptr(v float64) *float64 { return &v }

func TestNormalize_AliasPriority(t *testing.T) {
	t.Run("views prefers views over plays", func(t *testing.T) {
		bag := insights.RawMetricBag{"views": 100, "plays": 250}
		out := Normalize(bag, insights.ContentDescriptor{Kind: model.MediaKindVideo}, 0, testWeights)

		if out.Canonical.Views == nil || *out.Canonical.Views != 100 {
			t.Fatalf("expected views=100, got %v", out.Canonical.Views)
		}
	})

	t.Run("views falls back through the alias chain", func(t *testing.T) {
		cases := []struct {
			name string
			bag  insights.RawMetricBag
			want float64
		}{
			{"plays", insights.RawMetricBag{"plays": 50, "video_views": 60}, 50},
			{"video_views", insights.RawMetricBag{"video_views": 60, "impressions": 70}, 60},
			{"impressions", insights.RawMetricBag{"impressions": 70, "carousel_album_impressions": 80}, 70},
			{"carousel_album_impressions", insights.RawMetricBag{"carousel_album_impressions": 80}, 80},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				out := Normalize(tc.bag, insights.ContentDescriptor{Kind: model.MediaKindVideo}, 0, testWeights)
				if out.Canonical.Views == nil || *out.Canonical.Views != tc.want {
					t.Fatalf("expected views=%v, got %v", tc.want, out.Canonical.Views)
				}
			})
		}
	})

	t.Run("saves prefers saved over saves", func(t *testing.T) {
		bag := insights.RawMetricBag{"saved": 5, "saves": 9}
		out := Normalize(bag, insights.ContentDescriptor{Kind: model.MediaKindImage}, 0, testWeights)

		if out.Canonical.Saves == nil || *out.Canonical.Saves != 5 {
			t.Fatalf("expected saves=5, got %v", out.Canonical.Saves)
		}
	})

	t.Run("all aliases absent resolves to nil and reports missing", func(t *testing.T) {
		bag := insights.RawMetricBag{"unrelated": 1}
		out := Normalize(bag, insights.ContentDescriptor{Kind: model.MediaKindImage}, 0, testWeights)

		if out.Canonical.Views != nil {
			t.Errorf("expected nil views, got %v", *out.Canonical.Views)
		}
		if out.Canonical.Reach != nil {
			t.Errorf("expected nil reach, got %v", *out.Canonical.Reach)
		}
		want := []string{"views", "reach", "saves", "shares"}
		if !reflect.DeepEqual(out.Partial.MissingMetrics, want) {
			t.Errorf("expected missing %v, got %v", want, out.Partial.MissingMetrics)
		}
		if !out.Partial.IsPartial {
			t.Error("expected partial")
		}
		if !out.Partial.HasInsights {
			t.Error("non-empty bag should still count as having insights")
		}
	})
}

func TestNormalize_NilVersusZero(t *testing.T) {
	t.Run("measured zero is not missing", func(t *testing.T) {
		bag := insights.RawMetricBag{"views": 0, "reach": 0, "saved": 0, "shares": 0}
		out := Normalize(bag, insights.ContentDescriptor{Kind: model.MediaKindImage}, 0, testWeights)

		if out.Partial.IsPartial {
			t.Fatalf("zeros are measurements, expected complete, missing=%v", out.Partial.MissingMetrics)
		}
		if out.Canonical.Views == nil || *out.Canonical.Views != 0 {
			t.Errorf("expected views=0, got %v", out.Canonical.Views)
		}
	})

	t.Run("empty bag has no insights", func(t *testing.T) {
		out := Normalize(insights.RawMetricBag{}, insights.ContentDescriptor{Kind: model.MediaKindImage}, 0, testWeights)

		if out.Partial.HasInsights {
			t.Error("empty bag must not count as having insights")
		}
		if !out.Partial.IsPartial {
			t.Error("empty bag is partial")
		}
	})
}

func TestNormalize_DerivedMetrics(t *testing.T) {
	t.Run("engagement sums likes comments saves shares", func(t *testing.T) {
		bag := insights.RawMetricBag{"saved": 2, "reach": 200, "views": 50, "shares": 0}
		desc := insights.ContentDescriptor{Kind: model.MediaKindImage, LikeCount: 10, CommentsCount: 0}
		out := Normalize(bag, desc, 100, testWeights)

		if out.Derived.Engagement != 12 {
			t.Errorf("expected engagement=12, got %v", out.Derived.Engagement)
		}
		if math.IsNaN(out.Derived.Engagement) || math.IsInf(out.Derived.Engagement, 0) {
			t.Error("engagement must be finite")
		}
	})

	t.Run("nil saves and shares count as zero in sums", func(t *testing.T) {
		desc := insights.ContentDescriptor{Kind: model.MediaKindImage, LikeCount: 10, CommentsCount: 2}
		out := Normalize(insights.RawMetricBag{"views": 1}, desc, 0, testWeights)

		if out.Derived.Engagement != 12 {
			t.Errorf("expected engagement=12, got %v", out.Derived.Engagement)
		}
	})

	t.Run("score applies configured weights", func(t *testing.T) {
		bag := insights.RawMetricBag{"saved": 3, "shares": 1}
		desc := insights.ContentDescriptor{Kind: model.MediaKindImage, LikeCount: 5, CommentsCount: 2}
		out := Normalize(bag, desc, 0, testWeights)

		// 5*1 + 2*2 + 3*3 + 1*4
		if out.Derived.Score != 22 {
			t.Errorf("expected score=22, got %v", out.Derived.Score)
		}
	})

	t.Run("engagement rate nil without followers", func(t *testing.T) {
		desc := insights.ContentDescriptor{Kind: model.MediaKindImage, LikeCount: 12}
		out := Normalize(insights.RawMetricBag{"views": 1}, desc, 0, testWeights)

		if out.Derived.EngagementRate != nil {
			t.Errorf("expected nil engagement rate, got %v", *out.Derived.EngagementRate)
		}
	})

	t.Run("engagement rate per hundred followers", func(t *testing.T) {
		desc := insights.ContentDescriptor{Kind: model.MediaKindImage, LikeCount: 12}
		out := Normalize(insights.RawMetricBag{"views": 1}, desc, 100, testWeights)

		if out.Derived.EngagementRate == nil || *out.Derived.EngagementRate != 12 {
			t.Fatalf("expected engagement rate=12, got %v", out.Derived.EngagementRate)
		}
	})

	t.Run("views rate needs positive reach", func(t *testing.T) {
		desc := insights.ContentDescriptor{Kind: model.MediaKindVideo}

		out := Normalize(insights.RawMetricBag{"views": 50, "reach": 200}, desc, 0, testWeights)
		if out.Derived.ViewsRate == nil || *out.Derived.ViewsRate != 25 {
			t.Fatalf("expected views rate=25, got %v", out.Derived.ViewsRate)
		}

		out = Normalize(insights.RawMetricBag{"views": 50, "reach": 0}, desc, 0, testWeights)
		if out.Derived.ViewsRate != nil {
			t.Errorf("zero reach must not anchor a rate, got %v", *out.Derived.ViewsRate)
		}

		out = Normalize(insights.RawMetricBag{"views": 50}, desc, 0, testWeights)
		if out.Derived.ViewsRate != nil {
			t.Errorf("nil reach must not anchor a rate, got %v", *out.Derived.ViewsRate)
		}
	})

	t.Run("interactions per 1000 reach", func(t *testing.T) {
		desc := insights.ContentDescriptor{Kind: model.MediaKindImage, LikeCount: 10}
		out := Normalize(insights.RawMetricBag{"reach": 500}, desc, 0, testWeights)

		if out.Derived.InteractionsPer1000Reach == nil || *out.Derived.InteractionsPer1000Reach != 20 {
			t.Fatalf("expected 20 interactions per 1000 reach, got %v", out.Derived.InteractionsPer1000Reach)
		}
	})
}

func TestNormalize_CarouselViewsExemption(t *testing.T) {
	bag := insights.RawMetricBag{"reach": 100, "saved": 1, "shares": 2}
	out := Normalize(bag, insights.ContentDescriptor{Kind: model.MediaKindCarousel}, 0, testWeights)

	if out.Partial.IsPartial {
		t.Fatalf("carousel without views must be complete, missing=%v", out.Partial.MissingMetrics)
	}

	// Same bag on an image is partial: views is required there.
	out = Normalize(bag, insights.ContentDescriptor{Kind: model.MediaKindImage}, 0, testWeights)
	if !out.Partial.IsPartial {
		t.Fatal("image without views must be partial")
	}
}

func TestNormalize_Purity(t *testing.T) {
	bag := insights.RawMetricBag{"views": 10, "reach": 20}
	desc := insights.ContentDescriptor{Kind: model.MediaKindVideo, LikeCount: 3}

	first := Normalize(bag, desc, 100, testWeights)
	second := Normalize(bag, desc, 100, testWeights)

	if !reflect.DeepEqual(first, second) {
		t.Error("normalizing the same input twice must yield identical output")
	}

	// The returned raw bag is a copy, mutating it must not leak back.
	first.Canonical.Raw["views"] = 999
	if bag["views"] != 10 {
		t.Error("input bag was mutated")
	}
}
