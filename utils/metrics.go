package utils

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// LatencySnapshot summarises recorded request latencies in milliseconds
type LatencySnapshot struct {
	Count int64   `json:"count"`
	P50   float64 `json:"p50_ms"`
	P90   float64 `json:"p90_ms"`
	P99   float64 `json:"p99_ms"`
	Max   float64 `json:"max_ms"`
	Mean  float64 `json:"mean_ms"`
}

// LatencyRecorder is a concurrency-safe HDR histogram of request durations
type LatencyRecorder struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

// NewLatencyRecorder tracks durations from 1µs up to one minute
func NewLatencyRecorder() *LatencyRecorder {
	return &LatencyRecorder{hist: hdrhistogram.New(1, int64(time.Minute/time.Microsecond), 3)}
}

// RequestLatency is fed by LoggerMiddleware and served at /admin/metrics
var RequestLatency = NewLatencyRecorder()

// Record adds one observation. Values outside the range are clamped.
func (r *LatencyRecorder) Record(d time.Duration) {
	us := d.Microseconds()
	if us < 1 {
		us = 1
	}
	if limit := r.hist.HighestTrackableValue(); us > limit {
		us = limit
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.hist.RecordValue(us); err != nil {
		LogDebug("Latency not recorded: %v", err)
	}
}

// Snapshot returns the current percentiles
func (r *LatencyRecorder) Snapshot() LatencySnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	ms := func(us int64) float64 { return float64(us) / 1000 }
	return LatencySnapshot{
		Count: r.hist.TotalCount(),
		P50:   ms(r.hist.ValueAtQuantile(50)),
		P90:   ms(r.hist.ValueAtQuantile(90)),
		P99:   ms(r.hist.ValueAtQuantile(99)),
		Max:   ms(r.hist.Max()),
		Mean:  r.hist.Mean() / 1000,
	}
}

// Reset clears all observations
func (r *LatencyRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hist.Reset()
}
