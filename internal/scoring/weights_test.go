package scoring

import (
	"math"
	"testing"
)

func TestNormalizedSumsToOne(t *testing.T) {
	cases := []struct {
		name string
		in   Weights
	}{
		{"defaults", DefaultWeights()},
		{"skewed", Weights{Formation: 5, Experience: 3, Skills: 2, Competencies: 1, Keyword: 9}},
		{"tiny", Weights{Formation: 0.001, Experience: 0.002, Skills: 0.003, Competencies: 0.004, Keyword: 0.005}},
		{"single factor", Weights{Experience: 42}},
		{"already normalized", Weights{Formation: 0.5, Experience: 0.5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalized()
			if diff := math.Abs(got.Sum() - 1); diff > 1e-9 {
				t.Fatalf("normalized sum = %v, want 1 within 1e-9", got.Sum())
			}
		})
	}
}

func TestNormalizedDegenerateFallsBackToDefaults(t *testing.T) {
	got := Weights{}.Normalized()
	want := Weights{Formation: 0.20, Experience: 0.30, Skills: 0.25, Competencies: 0.15, Keyword: 0.10}
	if got != want {
		t.Fatalf("degenerate normalization = %+v, want %+v", got, want)
	}
}

func TestNormalizedPreservesProportions(t *testing.T) {
	got := Weights{Formation: 2, Experience: 2, Skills: 2, Competencies: 2, Keyword: 2}.Normalized()
	for name, val := range map[string]float64{
		"formation":    got.Formation,
		"experience":   got.Experience,
		"skills":       got.Skills,
		"competencies": got.Competencies,
		"keyword":      got.Keyword,
	} {
		if math.Abs(val-0.2) > 1e-9 {
			t.Fatalf("%s = %v, want 0.2", name, val)
		}
	}
}
