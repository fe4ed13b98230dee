// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AleutianAI/SocialExplorer/pkg/logging"
	"github.com/AleutianAI/SocialExplorer/services/explorer/config"
	"github.com/AleutianAI/SocialExplorer/services/explorer/graph"
	"github.com/AleutianAI/SocialExplorer/services/explorer/telemetry"
	"github.com/gin-gonic/gin"
)

func TestRunServe_StopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 0
	cfg.Server.GinMode = gin.TestMode
	cfg.Server.ShutdownTimeout = time.Second
	cfg.Telemetry.TraceExporter = telemetry.ExporterNone
	cfg.Telemetry.MetricExporter = telemetry.ExporterNone

	a := &app{
		cfg:    cfg,
		logger: logging.New(logging.Config{Quiet: true}),
		store:  graph.DefaultNetwork(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, a) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runServe did not return after cancel")
	}
}

func TestRunServe_LoadsGraphAfterTelemetry(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 0
	cfg.Server.GinMode = gin.TestMode
	cfg.Server.ShutdownTimeout = time.Second
	cfg.Telemetry.TraceExporter = telemetry.ExporterNone
	cfg.Telemetry.MetricExporter = telemetry.ExporterNone
	cfg.Graph.File = writeGraph(t, "network:\n  A: [B]\n  B: [A]\n")

	a := &app{
		cfg:    cfg,
		logger: logging.New(logging.Config{Quiet: true}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, a) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runServe did not return after cancel")
	}
	if a.store == nil || a.store.NodeCount() != 2 {
		t.Fatalf("store = %v, want the two-member graph loaded by runServe", a.store)
	}
}

func TestRunServe_MalformedGraph(t *testing.T) {
	cfg := config.Default()
	cfg.Server.GinMode = gin.TestMode
	cfg.Telemetry.TraceExporter = telemetry.ExporterNone
	cfg.Telemetry.MetricExporter = telemetry.ExporterNone
	cfg.Graph.File = writeGraph(t, "network:\n  A: [Ghost]\n")

	a := &app{
		cfg:    cfg,
		logger: logging.New(logging.Config{Quiet: true}),
	}

	err := runServe(context.Background(), a)
	if !errors.Is(err, graph.ErrUnknownNeighbor) {
		t.Fatalf("runServe() error = %v, want ErrUnknownNeighbor", err)
	}
}

func TestServeCmd_InvalidPort(t *testing.T) {
	_, err := run(t, "serve", "--port", "70000")
	if err == nil {
		t.Fatal("expected an error for an out-of-range port")
	}
}
