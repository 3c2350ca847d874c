package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument names.
const (
	MetricBatches   = "feeds.batches"
	MetricUpdates   = "feeds.updates"
	MetricBatchSize = "feeds.batch.size"
)

// Batch outcomes and update results used as attribute values.
const (
	OutcomeCommitted = "committed"
	ResultAccepted   = "accepted"
	ResultSkipped    = "skipped"
)

// Instruments are the OTel instruments the feeds keeper records batches on.
type Instruments struct {
	batches   metric.Int64Counter
	updates   metric.Int64Counter
	batchSize metric.Int64Histogram
}

// NewInstruments creates the module instruments on meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	batches, err := meter.Int64Counter(MetricBatches,
		metric.WithDescription("Update batches processed, by outcome"),
		metric.WithUnit("{batch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MetricBatches, err)
	}
	updates, err := meter.Int64Counter(MetricUpdates,
		metric.WithDescription("Updates in committed batches, by result"),
		metric.WithUnit("{update}"),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MetricUpdates, err)
	}
	batchSize, err := meter.Int64Histogram(MetricBatchSize,
		metric.WithDescription("Updates submitted per batch"),
		metric.WithUnit("{update}"),
		metric.WithExplicitBucketBoundaries(1, 2, 5, 10, 20, 50, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MetricBatchSize, err)
	}
	return &Instruments{batches: batches, updates: updates, batchSize: batchSize}, nil
}

// RecordCommitted records a committed batch of size updates, accepted of
// which were written.
func (i *Instruments) RecordCommitted(ctx context.Context, size int, accepted uint64) {
	i.batchSize.Record(ctx, int64(size))
	i.batches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", OutcomeCommitted)))
	i.updates.Add(ctx, int64(accepted), metric.WithAttributes(attribute.String("result", ResultAccepted)))
	i.updates.Add(ctx, int64(uint64(size)-accepted), metric.WithAttributes(attribute.String("result", ResultSkipped)))
}

// RecordRejected records a rolled-back batch of size updates.
func (i *Instruments) RecordRejected(ctx context.Context, size int, reason string) {
	i.batchSize.Record(ctx, int64(size))
	i.batches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", reason)))
}
