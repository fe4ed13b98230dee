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
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/AleutianAI/SocialExplorer/pkg/ux"
	"github.com/AleutianAI/SocialExplorer/services/explorer/graph"
	"github.com/AleutianAI/SocialExplorer/services/explorer/traverse"
)

const arrow = " → "

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func writeUsers(p *ux.Printer, users []string) error {
	for _, user := range users {
		if err := p.Line("%s", user); err != nil {
			return err
		}
	}
	return nil
}

// joinStyled joins members with arrows, highlighting each member.
func joinStyled(p *ux.Printer, members []string) string {
	styled := make([]string, len(members))
	for i, m := range members {
		styled[i] = p.Highlight(m)
	}
	return strings.Join(styled, p.Muted(arrow))
}

// writePath prints the path, then the summary message. With steps, the
// per-level trace comes first.
func writePath(p *ux.Printer, result *traverse.PathResult, steps bool) error {
	if steps {
		for _, step := range result.Steps {
			if err := p.Line("  %s %s", p.Label(fmt.Sprintf("[%d]", step.Level)), step.Message); err != nil {
				return err
			}
		}
	}
	if !result.Found {
		return p.Warning(result.Message)
	}
	if err := p.Line("%s", joinStyled(p, result.Path)); err != nil {
		return err
	}
	return p.Success(result.Message)
}

// writeCycles prints one loop per line, then the summary message.
func writeCycles(p *ux.Printer, result *traverse.CycleResult, steps bool) error {
	if steps {
		for i, step := range result.Steps {
			action := p.Label(fmt.Sprintf("%-12s", step.Action))
			if err := p.Line("  %3d %s %s", i+1, action, step.Message); err != nil {
				return err
			}
		}
	}
	for i, cycle := range result.Cycles {
		if err := p.Line("%d. %s", i+1, joinStyled(p, cycle)); err != nil {
			return err
		}
	}
	if result.Count == 0 {
		return p.Warning(result.Message)
	}
	return p.Success(result.Message)
}

// writeStats prints a title and the statistics as an aligned table.
//
// Table cells stay unstyled; tabwriter measures bytes, not display width.
func writeStats(w io.Writer, p *ux.Printer, stats graph.Stats) error {
	if err := p.Title("Network statistics"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Members\t%d\n", stats.TotalUsers)
	fmt.Fprintf(tw, "Connections\t%d\n", stats.TotalConnections)
	fmt.Fprintf(tw, "Average connections\t%s\n", stats.AverageConnections)
	fmt.Fprintf(tw, "Most connected\t%s (%d)\n", stats.MostConnected.User, stats.MostConnected.Connections)
	fmt.Fprintf(tw, "Least connected\t%s (%d)\n", stats.LeastConnected.User, stats.LeastConnected.Connections)

	degrees := make([]int, 0, len(stats.ConnectionDistribution))
	for d := range stats.ConnectionDistribution {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	fmt.Fprintln(tw, "Distribution\t")
	for _, d := range degrees {
		fmt.Fprintf(tw, "  %d connections\t%d\n", d, stats.ConnectionDistribution[d])
	}
	return tw.Flush()
}
