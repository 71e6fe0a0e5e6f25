package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"insight-srv/internal/insights"
	"insight-srv/internal/model"
	"insight-srv/pkg/graphapi"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// fakeGraphClient answers GetMediaInsights per metric combination, keyed by
// the comma-joined combination string.
type fakeGraphClient struct {
	responses map[string]map[string]float64
	errs      map[string]error
	calls     []string
}

func (f *fakeGraphClient) GetProfile(ctx context.Context, igUserID, accessToken string) (*graphapi.Profile, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGraphClient) GetMediaList(ctx context.Context, igUserID, accessToken string, limit int) ([]graphapi.MediaItem, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGraphClient) GetStories(ctx context.Context, igUserID, accessToken string) ([]graphapi.MediaItem, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGraphClient) GetMediaInsights(ctx context.Context, mediaID, accessToken string, metrics []string) (map[string]float64, error) {
	key := strings.Join(metrics, ",")
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if bag, ok := f.responses[key]; ok {
		return bag, nil
	}
	return nil, fmt.Errorf("graphapi: unsupported metric combination %q", key)
}

func newFetchUseCase(client graphapi.IClient) *implUseCase {
	return &implUseCase{
		graphClient: client,
		l:           nopLogger{},
		cfg:         DefaultConfig(),
	}
}

func TestFetchInsights(t *testing.T) {
	ctx := context.Background()

	t.Run("first combination wins", func(t *testing.T) {
		client := &fakeGraphClient{
			responses: map[string]map[string]float64{
				"views,reach,saved,shares,total_interactions": {"views": 10, "reach": 20},
			},
		}
		uc := newFetchUseCase(client)

		bag, err := uc.fetchInsights(ctx, "token", model.Media{ID: "m1", Kind: model.MediaKindImage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bag["views"] != 10 || bag["reach"] != 20 {
			t.Fatalf("unexpected bag: %v", bag)
		}
		if len(client.calls) != 1 {
			t.Fatalf("expected 1 call, got %d: %v", len(client.calls), client.calls)
		}
	})

	t.Run("error falls through to the next combination", func(t *testing.T) {
		client := &fakeGraphClient{
			errs: map[string]error{
				"views,reach,saved,shares,total_interactions": errors.New("(#100) metric not supported"),
			},
			responses: map[string]map[string]float64{
				"impressions,reach,saved,shares": {"impressions": 5, "reach": 8},
			},
		}
		uc := newFetchUseCase(client)

		bag, err := uc.fetchInsights(ctx, "token", model.Media{ID: "m1", Kind: model.MediaKindImage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bag["impressions"] != 5 {
			t.Fatalf("expected fallback combination result, got %v", bag)
		}
		if len(client.calls) != 2 {
			t.Fatalf("expected 2 calls, got %v", client.calls)
		}
	})

	t.Run("empty response falls through", func(t *testing.T) {
		client := &fakeGraphClient{
			responses: map[string]map[string]float64{
				"views,reach,saved,shares,total_interactions": {},
				"impressions,reach,saved,shares":               {"reach": 3},
			},
		}
		uc := newFetchUseCase(client)

		bag, err := uc.fetchInsights(ctx, "token", model.Media{ID: "m1", Kind: model.MediaKindImage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bag["reach"] != 3 {
			t.Fatalf("expected second combination result, got %v", bag)
		}
	})

	t.Run("exhaustion degrades to empty bag without error", func(t *testing.T) {
		client := &fakeGraphClient{}
		uc := newFetchUseCase(client)

		bag, err := uc.fetchInsights(ctx, "token", model.Media{ID: "m1", Kind: model.MediaKindImage})
		if err != nil {
			t.Fatalf("exhaustion must not fail the item: %v", err)
		}
		if bag == nil || len(bag) != 0 {
			t.Fatalf("expected empty bag, got %v", bag)
		}
		if len(client.calls) != len(imageCombinations) {
			t.Fatalf("expected %d attempts, got %v", len(imageCombinations), client.calls)
		}
	})

	t.Run("token rejection is fatal", func(t *testing.T) {
		client := &fakeGraphClient{
			errs: map[string]error{
				"views,reach,saved,shares,total_interactions": fmt.Errorf("graph call failed: %w", graphapi.ErrTokenInvalid),
			},
		}
		uc := newFetchUseCase(client)

		_, err := uc.fetchInsights(ctx, "token", model.Media{ID: "m1", Kind: model.MediaKindImage})
		if !errors.Is(err, insights.ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
		if len(client.calls) != 1 {
			t.Fatalf("token rejection must stop the ladder, got %v", client.calls)
		}
	})
}

func TestMetricCombinations(t *testing.T) {
	cases := []struct {
		name   string
		kind   string
		isReel bool
		first  []string
	}{
		{"reel overrides kind", model.MediaKindVideo, true, reelCombinations[0]},
		{"story", model.MediaKindStory, false, storyCombinations[0]},
		{"video", model.MediaKindVideo, false, videoCombinations[0]},
		{"carousel", model.MediaKindCarousel, false, carouselCombinations[0]},
		{"image", model.MediaKindImage, false, imageCombinations[0]},
		{"unknown kind defaults to image ladder", "SOMETHING_NEW", false, imageCombinations[0]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			combos := metricCombinations(tc.kind, tc.isReel)
			if len(combos) == 0 {
				t.Fatal("expected at least one combination")
			}
			if strings.Join(combos[0], ",") != strings.Join(tc.first, ",") {
				t.Fatalf("expected first combination %v, got %v", tc.first, combos[0])
			}
		})
	}

	t.Run("carousel ladder never requests views", func(t *testing.T) {
		for _, combo := range carouselCombinations {
			for _, m := range combo {
				if m == "views" {
					t.Fatalf("carousel combination %v requests views", combo)
				}
			}
		}
	})
}
