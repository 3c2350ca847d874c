package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FeedsMetrics holds all Prometheus metrics for the Feeds module
type FeedsMetrics struct {
	// Update metrics. Batch and update counts are OTel instruments, see
	// app/telemetry.
	BatchLatency prometheus.Histogram
	FeeCollected *prometheus.CounterVec

	// Registry metrics
	FeedTimestamp *prometheus.GaugeVec

	// Admin metrics
	ConfigUpdates *prometheus.CounterVec
}

var (
	feedsMetricsOnce sync.Once
	feedsMetrics     *FeedsMetrics
)

// NewFeedsMetrics creates and registers Feeds metrics (singleton pattern)
func NewFeedsMetrics() *FeedsMetrics {
	feedsMetricsOnce.Do(func() {
		feedsMetrics = &FeedsMetrics{
			BatchLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "paw",
					Subsystem: "feeds",
					Name:      "batch_duration_seconds",
					Help:      "Time spent processing an update batch",
					Buckets:   prometheus.DefBuckets,
				},
			),
			FeeCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "feeds",
					Name:      "fee_collected_total",
					Help:      "Funds transferred to the module account with update batches",
				},
				[]string{"denom"},
			),
			FeedTimestamp: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "feeds",
					Name:      "feed_timestamp_seconds",
					Help:      "Timestamp of the latest accepted value per asset id",
				},
				[]string{"id"},
			),
			ConfigUpdates: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "feeds",
					Name:      "config_updates_total",
					Help:      "Owner configuration changes, by field",
				},
				[]string{"field"},
			),
		}
	})
	return feedsMetrics
}

// GetFeedsMetrics returns the singleton Feeds metrics instance
func GetFeedsMetrics() *FeedsMetrics {
	if feedsMetrics == nil {
		return NewFeedsMetrics()
	}
	return feedsMetrics
}
