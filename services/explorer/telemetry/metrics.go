// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Traversal kinds used as the "kind" metric attribute.
const (
	TraversalShortestPath = "shortest_path"
	TraversalCycles       = "cycles"
)

// Metrics contains pre-defined metrics for the explorer service.
//
// Description:
//
//	Provides counters and histograms for HTTP requests and traversal runs.
//	All metrics use the "explorer_" prefix.
//
// Thread Safety: Safe for concurrent use after creation.
type Metrics struct {
	// --- HTTP Metrics ---

	// HTTPRequestsTotal counts HTTP requests by method, route, and status.
	HTTPRequestsTotal metric.Int64Counter

	// HTTPRequestDuration records HTTP request duration in seconds.
	HTTPRequestDuration metric.Float64Histogram

	// HTTPActiveRequests tracks in-flight HTTP requests.
	HTTPActiveRequests metric.Int64UpDownCounter

	// --- Traversal Metrics ---

	// TraversalsTotal counts traversal runs by kind and outcome.
	TraversalsTotal metric.Int64Counter

	// TraversalDuration records traversal duration in seconds.
	TraversalDuration metric.Float64Histogram

	// TraversalSteps records the number of trace steps per run.
	TraversalSteps metric.Int64Histogram

	// CyclesFoundTotal counts cycles returned by cycle searches.
	CyclesFoundTotal metric.Int64Counter

	// --- Error Metrics ---

	// ErrorsTotal counts request errors by code.
	ErrorsTotal metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with all metrics registered.
//
// Inputs:
//
//	meter - The OTel meter to use for metric registration.
//
// Outputs:
//
//	*Metrics - The metrics instance.
//	error - Non-nil if meter is nil or registration fails.
//
// Example:
//
//	metrics, err := telemetry.NewMetrics(otel.Meter("explorer"))
//	if err != nil {
//	    return fmt.Errorf("create metrics: %w", err)
//	}
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	m := &Metrics{}
	var err error

	// --- HTTP Metrics ---
	m.HTTPRequestsTotal, err = meter.Int64Counter(
		"explorer_http_requests_total",
		metric.WithDescription("Total HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create http_requests_total: %w", err)
	}

	m.HTTPRequestDuration, err = meter.Float64Histogram(
		"explorer_http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5),
	)
	if err != nil {
		return nil, fmt.Errorf("create http_request_duration: %w", err)
	}

	m.HTTPActiveRequests, err = meter.Int64UpDownCounter(
		"explorer_http_active_requests",
		metric.WithDescription("Currently active HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create http_active_requests: %w", err)
	}

	// --- Traversal Metrics ---
	m.TraversalsTotal, err = meter.Int64Counter(
		"explorer_traversals_total",
		metric.WithDescription("Total traversal runs"),
		metric.WithUnit("{traversal}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create traversals_total: %w", err)
	}

	m.TraversalDuration, err = meter.Float64Histogram(
		"explorer_traversal_duration_seconds",
		metric.WithDescription("Traversal duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1),
	)
	if err != nil {
		return nil, fmt.Errorf("create traversal_duration: %w", err)
	}

	m.TraversalSteps, err = meter.Int64Histogram(
		"explorer_traversal_steps",
		metric.WithDescription("Trace steps recorded per traversal"),
		metric.WithUnit("{step}"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000),
	)
	if err != nil {
		return nil, fmt.Errorf("create traversal_steps: %w", err)
	}

	m.CyclesFoundTotal, err = meter.Int64Counter(
		"explorer_cycles_found_total",
		metric.WithDescription("Total cycles returned by cycle searches"),
		metric.WithUnit("{cycle}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create cycles_found_total: %w", err)
	}

	// --- Error Metrics ---
	m.ErrorsTotal, err = meter.Int64Counter(
		"explorer_errors_total",
		metric.WithDescription("Total request errors by code"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create errors_total: %w", err)
	}

	return m, nil
}

// RecordTraversal records one traversal run.
//
// found is the path-found flag for shortest path runs and quota-reached
// for cycle runs. A nil receiver is a no-op.
func (m *Metrics) RecordTraversal(ctx context.Context, kind string, duration time.Duration, steps int, found bool) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("found", found),
	)
	m.TraversalsTotal.Add(ctx, 1, attrs)
	m.TraversalDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("kind", kind)))
	m.TraversalSteps.Record(ctx, int64(steps), metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordCycles adds count to the cycles-found counter. A nil receiver is a no-op.
func (m *Metrics) RecordCycles(ctx context.Context, count int) {
	if m == nil {
		return
	}
	m.CyclesFoundTotal.Add(ctx, int64(count))
}

// RecordError counts one request error with the given code. A nil receiver is a no-op.
func (m *Metrics) RecordError(ctx context.Context, code string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("code", code)))
}
