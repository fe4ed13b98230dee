// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package telemetry provides OpenTelemetry-based observability for the
// social explorer.
//
// Init configures the global TracerProvider, MeterProvider and W3C
// propagators. Packages that trace their own work (graph, traverse) use
// otel.Tracer directly and pick up whatever provider Init installed; with
// no Init they fall back to the OTel no-op provider.
//
// # Trace Backend (default: none)
//
// Traces are exported over OTLP gRPC or printed to stdout. The default is
// "none" so a developer running the server locally needs no collector.
//
// # Metrics Backend (default: Prometheus)
//
// Metrics are exposed at /metrics through a dedicated Prometheus registry
// that also carries the Go runtime and process collectors.
//
// # Logging
//
// LoggerWithTrace injects trace_id and span_id into slog entries for
// correlation with spans.
//
// # Environment Variables
//
// Read by Config.ApplyEnv:
//
//   - OTEL_TRACES_EXPORTER: otlp, stdout, or none (default: none)
//   - OTEL_METRICS_EXPORTER: prometheus, stdout, or none (default: prometheus)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint (default: localhost:4317)
//   - EXPLORER_ENV: environment name (default: development)
//
// # Thread Safety
//
// All exported functions are safe for concurrent use after Init() returns.
package telemetry
