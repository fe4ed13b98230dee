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
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for graph loading.
var (
	tracer = otel.Tracer("explorer.graph")
	meter  = otel.Meter("explorer.graph")
)

// Metrics for graph load operations.
var (
	loadLatency metric.Float64Histogram
	loadTotal   metric.Int64Counter
	nodesLoaded metric.Int64Histogram
	edgesLoaded metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		loadLatency, err = meter.Float64Histogram(
			"explorer_graph_load_duration_seconds",
			metric.WithDescription("Duration of graph load operations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		loadTotal, err = meter.Int64Counter(
			"explorer_graph_load_total",
			metric.WithDescription("Total number of graph load operations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		nodesLoaded, err = meter.Int64Histogram(
			"explorer_graph_nodes_loaded",
			metric.WithDescription("Number of members per loaded graph"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		edgesLoaded, err = meter.Int64Histogram(
			"explorer_graph_edges_loaded",
			metric.WithDescription("Number of unique connections per loaded graph"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordLoadMetrics records metrics for a load operation.
func recordLoadMetrics(ctx context.Context, duration time.Duration, nodeCount, edgeCount int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("success", success))

	loadLatency.Record(ctx, duration.Seconds(), attrs)
	loadTotal.Add(ctx, 1, attrs)

	if success {
		nodesLoaded.Record(ctx, int64(nodeCount))
		edgesLoaded.Record(ctx, int64(edgeCount))
	}
}

// startLoadSpan creates a span for a load operation.
func startLoadSpan(ctx context.Context, path string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "graph.Load",
		trace.WithAttributes(
			attribute.String("graph.path", path),
		),
	)
}

// setLoadSpanResult sets the result attributes on a load span.
func setLoadSpanResult(span trace.Span, nodeCount, edgeCount int) {
	span.SetAttributes(
		attribute.Int("graph.node_count", nodeCount),
		attribute.Int("graph.edge_count", edgeCount),
	)
}
