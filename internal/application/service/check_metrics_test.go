package service

import (
	"context"
	"errors"
	"pairingcheck/internal/application/dto"
	"pairingcheck/internal/config"
	domainservice "pairingcheck/internal/domain/service"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
)

func newTestMetrics(t *testing.T) (*CheckMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(resource.NewWithAttributes("test")),
	)
	metrics, err := NewCheckMetricsWithProvider(provider)
	require.NoError(t, err)
	return metrics, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	byName := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			byName[m.Name] = m
		}
	}
	return byName
}

// counterValues maps the given attribute's value to the counter total.
func counterValues(t *testing.T, m metricdata.Metrics, key string) map[string]int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)

	values := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		v, _ := dp.Attributes.Value(attribute.Key(key))
		values[v.AsString()] += dp.Value
	}
	return values
}

func outcomeWithDiagnostics(labels ...string) dto.FileOutcome {
	diagnostics := make([]domainservice.Diagnostic, 0, len(labels))
	for _, label := range labels {
		diagnostics = append(diagnostics, domainservice.Diagnostic{PairLabel: label, Score: 1})
	}
	return dto.FileOutcome{Path: "x.c", Diagnostics: diagnostics}
}

func TestNewCheckMetrics(t *testing.T) {
	t.Run("global provider", func(t *testing.T) {
		metrics, err := NewCheckMetrics()
		require.NoError(t, err)
		assert.NotNil(t, metrics.filesScanned)
		assert.NotNil(t, metrics.imbalances)
		assert.NotNil(t, metrics.scanDuration)
	})

	t.Run("noop provider", func(t *testing.T) {
		metrics, err := NewCheckMetricsWithProvider(noop.NewMeterProvider())
		require.NoError(t, err)
		assert.NotPanics(t, func() {
			metrics.RecordFileOutcome(context.Background(), dto.FileOutcome{Passed: true}, time.Millisecond)
		})
	})
}

func TestCheckMetrics_RecordFileOutcome(t *testing.T) {
	metrics, reader := newTestMetrics(t)
	ctx := context.Background()

	metrics.RecordFileOutcome(ctx, dto.FileOutcome{Path: "ok.c", Passed: true}, 2*time.Millisecond)
	metrics.RecordFileOutcome(ctx, outcomeWithDiagnostics("malloc/free", "update_add/update_remove"), 3*time.Millisecond)
	metrics.RecordFileOutcome(ctx, outcomeWithDiagnostics("malloc/free"), time.Millisecond)
	metrics.RecordFileOutcome(ctx, dto.NewFailedOutcome("gone.c", errors.New("missing")), 0)

	byName := collect(t, reader)

	require.Contains(t, byName, FilesScannedCounterName)
	assert.Equal(t, map[string]int64{
		ScanResultPassed:     1,
		ScanResultFailed:     2,
		ScanResultUnreadable: 1,
	}, counterValues(t, byName[FilesScannedCounterName], AttrScanResult))

	require.Contains(t, byName, ImbalancesCounterName)
	assert.Equal(t, map[string]int64{
		"malloc/free":              2,
		"update_add/update_remove": 1,
	}, counterValues(t, byName[ImbalancesCounterName], AttrPairLabel))

	require.Contains(t, byName, ScanDurationHistogramName)
	hist, ok := byName[ScanDurationHistogramName].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
		assert.Equal(t, getScanLatencyBuckets(), dp.Bounds)
	}
	assert.Equal(t, uint64(4), count)
}

func TestCheckMetrics_NilReceiver(t *testing.T) {
	var metrics *CheckMetrics
	assert.NotPanics(t, func() {
		metrics.RecordFileOutcome(context.Background(), dto.FileOutcome{}, time.Second)
	})
}

func TestPairingCheckService_RecordsOneScanPerFile(t *testing.T) {
	metrics, reader := newTestMetrics(t)
	files := &mapSourceReader{files: map[string]string{
		"a.c": "malloc(x);",
		"b.c": "malloc(x); free(x);",
	}}
	svc := NewPairingCheckService(config.DefaultPairTable(), files, metrics, PairingCheckConfig{Concurrency: 2})

	_, err := svc.CheckFiles(context.Background(), []string{"a.c", "b.c", "c.c"})
	require.NoError(t, err)

	byName := collect(t, reader)
	assert.Equal(t, map[string]int64{
		ScanResultPassed:     1,
		ScanResultFailed:     1,
		ScanResultUnreadable: 1,
	}, counterValues(t, byName[FilesScannedCounterName], AttrScanResult))
}
