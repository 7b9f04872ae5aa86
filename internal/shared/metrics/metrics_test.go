package metrics

import (
	"strings"
	"testing"
)

func TestRenderHistogramBucketsAreCumulative(t *testing.T) {
	ObserveRankingDurationMs(4)
	ObserveRankingDurationMs(20)
	ObserveRankingDurationMs(9999)

	out := Render()
	for _, want := range []string{
		`ranking_duration_ms_bucket{le="5"} 1`,
		`ranking_duration_ms_bucket{le="25"} 2`,
		`ranking_duration_ms_bucket{le="5000"} 2`,
		`ranking_duration_ms_bucket{le="+Inf"} 3`,
		`ranking_duration_ms_count 3`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCounters(t *testing.T) {
	IncRankingsServed()
	AddScoresComputed(2)
	AddScoresComputed(-1)
	IncStaleCandidates()

	out := Render()
	for _, want := range []string{
		"# TYPE rankings_served_total counter",
		"rankings_served_total 1",
		"scores_computed_total 2",
		"stale_candidates_skipped_total 1",
		"recompute_jobs_received_total 0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}
