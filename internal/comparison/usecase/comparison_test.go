package usecase

import "testing"

func TestCompare(t *testing.T) {
	cases := []struct {
		name        string
		current     float64
		previous    float64
		wantChange  float64
		wantPercent float64
	}{
		{"growth", 150, 100, 50, 50},
		{"decline", 40, 80, -40, -50},
		{"flat", 100, 100, 0, 0},
		{"growth from nothing reads as plus hundred", 50, 0, 50, 100},
		{"nothing to nothing reads as zero", 0, 0, 0, 0},
		{"drop to nothing", 0, 25, -25, -100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compare(tc.current, tc.previous)

			if got.Current != tc.current || got.Previous != tc.previous {
				t.Fatalf("inputs not echoed: %+v", got)
			}
			if got.Change != tc.wantChange {
				t.Errorf("expected change=%v, got %v", tc.wantChange, got.Change)
			}
			if got.ChangePercent != tc.wantPercent {
				t.Errorf("expected percent=%v, got %v", tc.wantPercent, got.ChangePercent)
			}
		})
	}
}
