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
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AleutianAI/SocialExplorer/services/explorer"
	"github.com/AleutianAI/SocialExplorer/services/explorer/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

// readHeaderTimeout bounds how long a client may take to send headers.
const readHeaderTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		port  int
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			if debug {
				a.cfg.Server.GinMode = gin.DebugMode
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), a)
		},
	}

	cmd.Flags().IntVar(&port, "port", 3001, "port to listen on")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable gin debug mode")
	return cmd
}

// runServe starts telemetry and the HTTP server, and blocks until a
// signal arrives or the server fails.
//
// Description:
//
//	The server and the shutdown watcher run in one errgroup. SIGINT or
//	SIGTERM cancels the group context and the watcher drains in-flight
//	requests within the configured shutdown timeout. The graph loads after
//	telemetry starts so its span and load metrics reach the exporters.
//	Telemetry is flushed after the server stops.
func runServe(ctx context.Context, a *app) error {
	cfg := a.cfg
	logger := a.logger
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logger.Warn("Telemetry shutdown failed", "error", err)
		}
	}()

	metrics, err := telemetry.NewMetrics(otel.Meter("explorer"))
	if err != nil {
		return fmt.Errorf("create metrics: %w", err)
	}

	svc, err := a.newService(ctx, explorer.WithMetrics(metrics))
	if err != nil {
		return err
	}
	router := explorer.NewRouter(svc, explorer.RouterConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		CORSOrigins: cfg.Server.CORSOrigins,
		Metrics:     metrics,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting Social Network Explorer",
			"address", srv.Addr,
			"members", svc.NetworkSize(),
			"version", explorer.Version,
			"gin_mode", cfg.Server.GinMode,
			"trace_exporter", cfg.Telemetry.TraceExporter,
			"metric_exporter", cfg.Telemetry.MetricExporter,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down Social Network Explorer")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server stopped", "uptime", svc.Uptime().Round(time.Second).String())
	return nil
}
