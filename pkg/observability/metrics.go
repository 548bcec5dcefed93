package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricFilesClassified = "hyply.files.classified"
	metricClassifyLatency = "hyply.classify.duration.seconds"
	metricDetectionsByKind = "hyply.detections.by_strategy"
	metricFilesSkipped    = "hyply.files.skipped"

	attrStrategy = "strategy"
	attrLanguage = "language"
)

// classifyLatencyBuckets covers single-file detection (microseconds) up
// through a worst-case classifier pass over a near-51KB file.
var classifyLatencyBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}

// BreakdownMetrics holds the OTel instruments a breakdown run records
// against: how many files were classified, by which strategy, and how long
// each classification took.
type BreakdownMetrics struct {
	filesClassified metric.Int64Counter
	classifyLatency metric.Float64Histogram
	byStrategy      metric.Int64Counter
	filesSkipped    metric.Int64Counter
}

// NewBreakdownMetrics creates the breakdown metric instruments from mt.
func NewBreakdownMetrics(mt metric.Meter) (*BreakdownMetrics, error) {
	filesClassified, err := mt.Int64Counter(metricFilesClassified,
		metric.WithDescription("Total number of files classified"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricFilesClassified, err)
	}

	classifyLatency, err := mt.Float64Histogram(metricClassifyLatency,
		metric.WithDescription("Time to classify a single file"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(classifyLatencyBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricClassifyLatency, err)
	}

	byStrategy, err := mt.Int64Counter(metricDetectionsByKind,
		metric.WithDescription("Detections grouped by the strategy that decided them"),
		metric.WithUnit("{detection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricDetectionsByKind, err)
	}

	filesSkipped, err := mt.Int64Counter(metricFilesSkipped,
		metric.WithDescription("Total number of paths skipped by the ignore rules"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricFilesSkipped, err)
	}

	return &BreakdownMetrics{
		filesClassified: filesClassified,
		classifyLatency: classifyLatency,
		byStrategy:      byStrategy,
		filesSkipped:    filesSkipped,
	}, nil
}

// RecordFile records one file's classification outcome and latency.
func (m *BreakdownMetrics) RecordFile(ctx context.Context, strategy, language string, duration time.Duration) {
	m.filesClassified.Add(ctx, 1)
	m.classifyLatency.Record(ctx, duration.Seconds())
	m.byStrategy.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String(attrStrategy, strategy),
			attribute.String(attrLanguage, language),
		),
	)
}

// RecordSkipped records one path (file or directory subtree) skipped by the
// ignore rules during the walk.
func (m *BreakdownMetrics) RecordSkipped(ctx context.Context) {
	m.filesSkipped.Add(ctx, 1)
}
