// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package traverse

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer for traversal operations.
var tracer = otel.Tracer("explorer.traverse")

// startShortestPathSpan creates a span for a BFS run.
func startShortestPathSpan(ctx context.Context, from, to string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "traverse.ShortestPath",
		trace.WithAttributes(
			attribute.String("bfs.from", from),
			attribute.String("bfs.to", to),
		),
	)
}

// setShortestPathSpanResult sets the result attributes on a BFS span.
func setShortestPathSpanResult(span trace.Span, result *PathResult) {
	span.SetAttributes(
		attribute.Bool("bfs.found", result.Found),
		attribute.Int("bfs.length", result.Length),
		attribute.Int("bfs.steps", len(result.Steps)),
	)
	span.SetStatus(codes.Ok, "")
}

// startFindCyclesSpan creates a span for a DFS run.
func startFindCyclesSpan(ctx context.Context, quota int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "traverse.FindCycles",
		trace.WithAttributes(
			attribute.Int("dfs.quota", quota),
		),
	)
}

// setFindCyclesSpanResult sets the result attributes on a DFS span.
func setFindCyclesSpanResult(span trace.Span, result *CycleResult) {
	span.SetAttributes(
		attribute.Int("dfs.cycles", result.Count),
		attribute.Bool("dfs.quota_reached", result.QuotaReached),
		attribute.Int("dfs.steps", len(result.Steps)),
	)
	span.SetStatus(codes.Ok, "")
}

// failSpan marks a span as failed.
func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
