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
	"log/slog"
)

// LoggerWithTrace returns a logger carrying trace_id and span_id from ctx.
//
// Description:
//
//	When ctx holds a valid span context the returned logger adds both IDs
//	to every entry. Otherwise logger is returned unchanged. A nil logger
//	is replaced with slog.Default().
//
// Example:
//
//	logger := telemetry.LoggerWithTrace(ctx, slog.Default())
//	logger.Info("path computed", slog.Int("length", result.Length))
//
// Thread Safety: Safe for concurrent use.
func LoggerWithTrace(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	if ctx == nil {
		return logger
	}

	traceID := TraceID(ctx)
	if traceID == "" {
		return logger
	}
	return logger.With(
		slog.String("trace_id", traceID),
		slog.String("span_id", SpanID(ctx)),
	)
}
