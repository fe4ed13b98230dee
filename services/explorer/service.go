// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package explorer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AleutianAI/SocialExplorer/services/explorer/graph"
	"github.com/AleutianAI/SocialExplorer/services/explorer/telemetry"
	"github.com/AleutianAI/SocialExplorer/services/explorer/traverse"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "explorer.service"

// Version is reported by the health endpoint.
const Version = "2.0.0"

// ServiceConfig configures the explorer service.
type ServiceConfig struct {
	// DefaultCycleQuota is used when a cycle request names no quota.
	// Default: 5
	DefaultCycleQuota int

	// MaxCycleQuota is the largest quota a request may ask for.
	// Default: 100
	MaxCycleQuota int
}

// DefaultServiceConfig returns the default service configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		DefaultCycleQuota: traverse.DefaultCycleQuota,
		MaxCycleQuota:     100,
	}
}

// Service runs validated traversals over one immutable graph.
type Service struct {
	store   *graph.Store
	bfs     *traverse.BFS
	dfs     *traverse.DFS
	stats   graph.Stats
	config  ServiceConfig
	metrics *telemetry.Metrics
	started time.Time
}

// ServiceOption configures optional Service dependencies.
type ServiceOption func(*Service)

// WithMetrics records traversal metrics on m.
func WithMetrics(m *telemetry.Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates a service over store.
//
// Description:
//
//	Statistics are computed once here; the store never changes, so they
//	stay valid for the life of the service. Zero config values fall back
//	to DefaultServiceConfig.
//
// Inputs:
//
//	store - The loaded graph. Must not be nil.
//	config - Quota limits.
//	opts - Optional dependencies such as WithMetrics.
//
// Outputs:
//
//	*Service - Ready to serve requests.
func NewService(store *graph.Store, config ServiceConfig, opts ...ServiceOption) *Service {
	defaults := DefaultServiceConfig()
	if config.DefaultCycleQuota <= 0 {
		config.DefaultCycleQuota = defaults.DefaultCycleQuota
	}
	if config.MaxCycleQuota < config.DefaultCycleQuota {
		config.MaxCycleQuota = max(defaults.MaxCycleQuota, config.DefaultCycleQuota)
	}

	s := &Service{
		store:   store,
		bfs:     traverse.NewBFS(store),
		dfs:     traverse.NewDFS(store),
		stats:   graph.ComputeStats(store),
		config:  config,
		started: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListUsers returns every member in load order.
func (s *Service) ListUsers() []string {
	return s.store.AllNodes()
}

// NetworkSize returns the number of members.
func (s *Service) NetworkSize() int {
	return s.store.NodeCount()
}

// Stats returns the precomputed network statistics.
func (s *Service) Stats() graph.Stats {
	stats := s.stats
	stats.ConnectionDistribution = make(map[int]int, len(s.stats.ConnectionDistribution))
	for k, v := range s.stats.ConnectionDistribution {
		stats.ConnectionDistribution[k] = v
	}
	return stats
}

// Adjacency returns the full adjacency in load order.
func (s *Service) Adjacency() []graph.Entry {
	return s.store.Adjacency()
}

// Edges returns the unique undirected connections.
func (s *Service) Edges() []graph.Edge {
	return graph.Edges(s.store)
}

// DefaultCycleQuota returns the quota used when a request names none.
func (s *Service) DefaultCycleQuota() int {
	return s.config.DefaultCycleQuota
}

// Uptime returns how long the service has existed.
func (s *Service) Uptime() time.Duration {
	return time.Since(s.started)
}

// ShortestPath validates the endpoints and runs the traced BFS.
//
// Description:
//
//	Validation happens before any traversal: both names must be non-empty
//	and both must be members. An unreachable target is a valid result with
//	an empty path.
//
// Inputs:
//
//	ctx - Request context for tracing.
//	from - Starting member.
//	to - Target member.
//
// Outputs:
//
//	*traverse.PathResult - Path, length and trace.
//	error - ErrMissingUsers, or an *UnknownUserError matching ErrUserNotFound.
func (s *Service) ShortestPath(ctx context.Context, from, to string) (*traverse.PathResult, error) {
	ctx, span := telemetry.StartSpan(ctx, tracerName, "Service.ShortestPath",
		trace.WithAttributes(
			attribute.String("path.from", from),
			attribute.String("path.to", to),
		),
	)
	defer span.End()

	if from == "" || to == "" {
		telemetry.RecordError(span, ErrMissingUsers)
		return nil, ErrMissingUsers
	}
	for _, user := range []string{from, to} {
		if !s.store.Exists(user) {
			err := &UnknownUserError{User: user}
			telemetry.RecordError(span, err)
			return nil, err
		}
	}

	start := time.Now()
	result, err := s.bfs.ShortestPath(ctx, from, to)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("shortest path %s -> %s: %w", from, to, err)
	}
	s.metrics.RecordTraversal(ctx, telemetry.TraversalShortestPath, time.Since(start), len(result.Steps), result.Found)

	telemetry.LoggerWithTrace(ctx, slog.Default()).Debug("Shortest path computed",
		"from", from,
		"to", to,
		"found", result.Found,
		"length", result.Length,
		"steps", len(result.Steps),
	)
	telemetry.SetSpanOK(span)
	return result, nil
}

// FindCycles validates quota and runs the traced DFS.
//
// Inputs:
//
//	ctx - Request context for tracing.
//	quota - Number of cycles to look for, in [1, MaxCycleQuota].
//
// Outputs:
//
//	*traverse.CycleResult - Cycles and trace.
//	error - Wraps ErrQuotaOutOfRange if quota is out of range.
func (s *Service) FindCycles(ctx context.Context, quota int) (*traverse.CycleResult, error) {
	ctx, span := telemetry.StartSpan(ctx, tracerName, "Service.FindCycles",
		trace.WithAttributes(attribute.Int("cycles.quota", quota)),
	)
	defer span.End()

	if quota < 1 || quota > s.config.MaxCycleQuota {
		err := fmt.Errorf("%w: %d not in [1, %d]", ErrQuotaOutOfRange, quota, s.config.MaxCycleQuota)
		telemetry.RecordError(span, err)
		return nil, err
	}

	start := time.Now()
	result, err := s.dfs.FindCycles(ctx, quota)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("find cycles: %w", err)
	}
	s.metrics.RecordTraversal(ctx, telemetry.TraversalCycles, time.Since(start), len(result.Steps), result.QuotaReached)
	s.metrics.RecordCycles(ctx, result.Count)

	telemetry.LoggerWithTrace(ctx, slog.Default()).Debug("Cycles computed",
		"quota", quota,
		"count", result.Count,
		"quota_reached", result.QuotaReached,
		"steps", len(result.Steps),
	)
	telemetry.SetSpanOK(span)
	return result, nil
}
