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
	"github.com/spf13/cobra"
)

// outputFlags are shared by the query commands.
type outputFlags struct {
	json  bool
	steps bool
}

func (o *outputFlags) register(cmd *cobra.Command, withSteps bool) {
	cmd.Flags().BoolVar(&o.json, "json", false, "print the full result as JSON")
	if withSteps {
		cmd.Flags().BoolVar(&o.steps, "steps", false, "print every traversal step")
	}
}

func newUsersCmd(a *app) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List network members in load order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}
			users := svc.ListUsers()
			if out.json {
				return writeJSON(cmd.OutOrStdout(), map[string][]string{"users": users})
			}
			return writeUsers(a.printer(cmd), users)
		},
	}
	out.register(cmd, false)
	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Find the shortest path between two members",
		Example: `  explorer path Alice Oliver
  explorer path Alice Oliver --steps
  explorer path Alice Oliver --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}
			result, err := svc.ShortestPath(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if out.json {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writePath(a.printer(cmd), result, out.steps)
		},
	}
	out.register(cmd, true)
	return cmd
}

func newCyclesCmd(a *app) *cobra.Command {
	var (
		out   outputFlags
		quota int
	)

	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "Find friend loops with a traced depth-first search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("quota") {
				quota = svc.DefaultCycleQuota()
			}
			result, err := svc.FindCycles(cmd.Context(), quota)
			if err != nil {
				return err
			}
			if out.json {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writeCycles(a.printer(cmd), result, out.steps)
		},
	}
	out.register(cmd, true)
	cmd.Flags().IntVar(&quota, "quota", 0, "number of loops to find (default from config)")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print network statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}
			stats := svc.Stats()
			if out.json {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			return writeStats(cmd.OutOrStdout(), a.printer(cmd), stats)
		},
	}
	out.register(cmd, false)
	return cmd
}
