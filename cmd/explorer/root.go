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
	"fmt"
	"log/slog"

	"github.com/AleutianAI/SocialExplorer/pkg/logging"
	"github.com/AleutianAI/SocialExplorer/pkg/ux"
	"github.com/AleutianAI/SocialExplorer/services/explorer"
	"github.com/AleutianAI/SocialExplorer/services/explorer/config"
	"github.com/AleutianAI/SocialExplorer/services/explorer/graph"
	"github.com/spf13/cobra"
)

// app holds state shared by every subcommand once the root pre-run has
// loaded configuration. The graph is loaded on first use so serve can
// start telemetry first.
type app struct {
	configPath string
	envFile    string
	graphPath  string
	logLevel   string
	color      string

	colorMode ux.ColorMode
	cfg       config.Config
	logger    *logging.Logger
	store     *graph.Store
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "explorer",
		Short:         "Explore a social network with traced BFS and DFS",
		Long:          "explorer finds degrees of separation and friend loops in a social graph,\nrecording every traversal step for visualization.",
		Version:       explorer.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return a.logger.Close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.envFile, "env-file", "", "dotenv file loaded before reading the environment")
	flags.StringVar(&a.graphPath, "graph", "", "graph file (overrides config and EXPLORER_GRAPH_FILE)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.color, "color", "auto", "styled output: auto, always, never")

	rootCmd.AddCommand(
		newServeCmd(a),
		newUsersCmd(a),
		newPathCmd(a),
		newCyclesCmd(a),
		newStatsCmd(a),
	)
	return rootCmd
}

// setup loads config and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	mode, err := ux.ParseColorMode(a.color)
	if err != nil {
		return fmt.Errorf("--color: %w", err)
	}
	a.colorMode = mode

	if a.envFile != "" {
		if err := config.LoadEnvFile(a.envFile); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.graphPath != "" {
		cfg.Graph.File = a.graphPath
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	a.cfg = cfg

	a.logger = logging.New(logging.Config{
		Level:   cfg.LogLevel(),
		LogDir:  cfg.Logging.LogDir,
		Service: cfg.Telemetry.ServiceName,
		JSON:    cfg.Logging.JSON,
		Output:  cmd.ErrOrStderr(),
	})
	slog.SetDefault(a.logger.Slog())
	return nil
}

// loadStore returns the graph, loading it on the first call.
//
// A graph that fails to load is fatal; no subcommand runs over a
// malformed network.
func (a *app) loadStore(ctx context.Context) (*graph.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	if a.cfg.Graph.File == "" {
		a.store = graph.DefaultNetwork()
		a.logger.Debug("Using built-in network", "members", a.store.NodeCount())
		return a.store, nil
	}

	store, err := graph.Load(ctx, a.cfg.Graph.File, graph.WithMaxNodes(a.cfg.Graph.MaxNodes))
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	a.store = store
	a.logger.Info("Graph loaded",
		"file", a.cfg.Graph.File,
		"members", store.NodeCount(),
		"connections", store.EdgeCount(),
	)
	return store, nil
}

// printer returns a Printer for the command's stdout.
func (a *app) printer(cmd *cobra.Command) *ux.Printer {
	return ux.NewPrinter(cmd.OutOrStdout(), a.colorMode)
}

// newService builds the explorer service over the graph.
func (a *app) newService(ctx context.Context, opts ...explorer.ServiceOption) (*explorer.Service, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return nil, err
	}
	return explorer.NewService(store, explorer.ServiceConfig{
		DefaultCycleQuota: a.cfg.Traversal.DefaultCycleQuota,
		MaxCycleQuota:     a.cfg.Traversal.MaxCycleQuota,
	}, opts...), nil
}
