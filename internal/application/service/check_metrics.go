package service

import (
	"context"
	"pairingcheck/internal/application/dto"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names following OpenTelemetry semantic conventions.
const (
	FilesScannedCounterName       = "pairingcheck_files_scanned_total"
	ImbalancesCounterName         = "pairingcheck_imbalances_total"
	ScanDurationHistogramName     = "pairingcheck_scan_duration_seconds"
	checkMeterName                = "pairingcheck/service"
	checkMeterInstrumentationVers = "1.0.0"
)

// Attribute keys and values.
const (
	AttrScanResult = "result"
	AttrPairLabel  = "pair"

	ScanResultPassed     = "passed"
	ScanResultFailed     = "failed"
	ScanResultUnreadable = "unreadable"
)

// getScanLatencyBuckets returns bucket boundaries for single-file scans
// (100µs to 5s range).
func getScanLatencyBuckets() []float64 {
	return []float64{
		0.0001, // 100µs
		0.0005, // 500µs
		0.001,  // 1ms
		0.005,  // 5ms
		0.01,   // 10ms
		0.05,   // 50ms
		0.1,    // 100ms
		0.5,    // 500ms
		1.0,    // 1s
		5.0,    // 5s
	}
}

// CheckMetrics records per-file scan outcomes.
type CheckMetrics struct {
	filesScanned metric.Int64Counter
	imbalances   metric.Int64Counter
	scanDuration metric.Float64Histogram
}

// NewCheckMetrics creates check metrics on the global meter provider.
func NewCheckMetrics() (*CheckMetrics, error) {
	return NewCheckMetricsWithProvider(otel.GetMeterProvider())
}

// NewCheckMetricsWithProvider creates check metrics on a specific meter provider.
func NewCheckMetricsWithProvider(provider metric.MeterProvider) (*CheckMetrics, error) {
	meter := provider.Meter(checkMeterName, metric.WithInstrumentationVersion(checkMeterInstrumentationVers))

	filesScanned, err := meter.Int64Counter(
		FilesScannedCounterName,
		metric.WithDescription("Total number of files scanned"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, err
	}

	imbalances, err := meter.Int64Counter(
		ImbalancesCounterName,
		metric.WithDescription("Total number of imbalanced pairs found"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, err
	}

	scanDuration, err := meter.Float64Histogram(
		ScanDurationHistogramName,
		metric.WithDescription("Duration of single-file scans in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(getScanLatencyBuckets()...),
	)
	if err != nil {
		return nil, err
	}

	return &CheckMetrics{
		filesScanned: filesScanned,
		imbalances:   imbalances,
		scanDuration: scanDuration,
	}, nil
}

// RecordFileOutcome records one scanned file. A nil receiver is a no-op.
func (m *CheckMetrics) RecordFileOutcome(ctx context.Context, outcome dto.FileOutcome, duration time.Duration) {
	if m == nil {
		return
	}

	result := scanResult(outcome)
	resultAttr := metric.WithAttributes(attribute.String(AttrScanResult, result))

	m.filesScanned.Add(ctx, 1, resultAttr)
	m.scanDuration.Record(ctx, duration.Seconds(), resultAttr)

	for _, diagnostic := range outcome.Diagnostics {
		m.imbalances.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrPairLabel, diagnostic.PairLabel)))
	}
}

func scanResult(outcome dto.FileOutcome) string {
	switch {
	case outcome.Err != nil:
		return ScanResultUnreadable
	case outcome.Passed:
		return ScanResultPassed
	default:
		return ScanResultFailed
	}
}
