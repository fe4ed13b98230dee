// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// The global meter delegates to the first provider installed, so every
// test in this binary shares one reader.
var (
	metricReader     *sdkmetric.ManualReader
	metricReaderOnce sync.Once
)

func testMetricReader() *sdkmetric.ManualReader {
	metricReaderOnce.Do(func() {
		metricReader = sdkmetric.NewManualReader()
		otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(metricReader)))
	})
	return metricReader
}

// loadCounts returns explorer_graph_load_total keyed by the success attribute.
func loadCounts(t *testing.T, reader *sdkmetric.ManualReader) map[bool]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	counts := make(map[bool]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "explorer_graph_load_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("explorer_graph_load_total aggregation = %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				v, ok := dp.Attributes.Value("success")
				if !ok {
					t.Fatal("data point without success attribute")
				}
				counts[v.AsBool()] += dp.Value
			}
		}
	}
	return counts
}

func TestLoad_RecordsMetrics(t *testing.T) {
	reader := testMetricReader()
	before := loadCounts(t, reader)

	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, good, "network:\n  A: [B]\n  B: [A]\n")
	writeFile(t, bad, "network:\n  A: [Ghost]\n")

	if _, err := Load(context.Background(), good); err != nil {
		t.Fatalf("Load(good) error = %v", err)
	}
	if _, err := Load(context.Background(), bad); err == nil {
		t.Fatal("Load(bad) succeeded, want an error")
	}

	after := loadCounts(t, reader)
	if got := after[true] - before[true]; got != 1 {
		t.Errorf("success=true loads = %d, want 1", got)
	}
	if got := after[false] - before[false]; got != 1 {
		t.Errorf("success=false loads = %d, want 1", got)
	}
}
