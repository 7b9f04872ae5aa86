package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	rankingsServedTotal        atomic.Uint64
	scoresComputedTotal        atomic.Uint64
	staleCandidatesTotal       atomic.Uint64
	recomputeJobsReceivedTotal atomic.Uint64
	recomputeJobsFailedTotal   atomic.Uint64

	rankingDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000})
)

// IncRankingsServed increments the served rankings counter.
func IncRankingsServed() {
	rankingsServedTotal.Add(1)
}

// AddScoresComputed adds n to the computed scores counter.
func AddScoresComputed(n int) {
	if n > 0 {
		scoresComputedTotal.Add(uint64(n))
	}
}

// IncStaleCandidates increments the skipped stale candidates counter.
func IncStaleCandidates() {
	staleCandidatesTotal.Add(1)
}

// IncRecomputeJobsReceived increments the received recompute jobs counter.
func IncRecomputeJobsReceived() {
	recomputeJobsReceivedTotal.Add(1)
}

// IncRecomputeJobsFailed increments the failed recompute jobs counter.
func IncRecomputeJobsFailed() {
	recomputeJobsFailedTotal.Add(1)
}

// ObserveRankingDurationMs records a top-N ranking duration in milliseconds.
func ObserveRankingDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	rankingDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render returns the current metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "rankings_served_total", "Total top-N ranking requests served", rankingsServedTotal.Load())
	writeCounter(&buf, "scores_computed_total", "Total candidate scores computed", scoresComputedTotal.Load())
	writeCounter(&buf, "stale_candidates_skipped_total", "Total candidates skipped because they vanished mid-computation", staleCandidatesTotal.Load())
	writeCounter(&buf, "recompute_jobs_received_total", "Total recompute queue messages received", recomputeJobsReceivedTotal.Load())
	writeCounter(&buf, "recompute_jobs_failed_total", "Total recompute queue messages that failed processing", recomputeJobsFailedTotal.Load())
	writeHistogram(&buf, "ranking_duration_ms", "Top-N ranking duration in milliseconds", rankingDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
