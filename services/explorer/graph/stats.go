// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Edge is one undirected connection, oriented as first discovered.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MemberDegree names a member together with its connection count.
type MemberDegree struct {
	User        string `json:"user"`
	Connections int    `json:"connections"`
}

// Stats holds descriptive statistics derived from the adjacency data.
type Stats struct {
	// TotalUsers is the number of members.
	TotalUsers int `json:"totalUsers"`

	// TotalConnections is the number of unique undirected connections.
	TotalConnections int `json:"totalConnections"`

	// AverageConnections is 2·TotalConnections / TotalUsers, two decimals.
	AverageConnections string `json:"averageConnections"`

	// MostConnected is the first member in load order with the highest degree.
	MostConnected MemberDegree `json:"mostConnected"`

	// LeastConnected is the first member in load order with the lowest degree.
	LeastConnected MemberDegree `json:"leastConnected"`

	// ConnectionDistribution maps degree to the number of members with it.
	ConnectionDistribution map[int]int `json:"connectionDistribution"`
}

// Edges returns every unique undirected connection.
//
// Description:
//
//	Walks members in load order and their neighbors in declared order,
//	emitting each unordered pair the first time it is seen. The result is
//	deterministic for a given store.
func Edges(s *Store) []Edge {
	return uniqueEdges(s)
}

// uniqueEdges implements Edges without going through exported accessors,
// so New can call it before the store is handed out.
func uniqueEdges(s *Store) []Edge {
	seen := make(map[string]struct{})
	edges := make([]Edge, 0)
	for _, id := range s.order {
		for _, nbr := range s.adjacency[id] {
			key := edgeKey(id, nbr)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, Edge{From: id, To: nbr})
		}
	}
	return edges
}

// edgeKey returns the order-independent key of the pair (a, b).
func edgeKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "\x00")
}

// ComputeStats derives network statistics from the store.
//
// Description:
//
//	Degree is the length of a member's declared neighbor list. Ties for
//	most and least connected go to the member loaded first.
//
// Inputs:
//
//	s - The graph store. Must not be nil.
//
// Outputs:
//
//	Stats - The computed statistics.
func ComputeStats(s *Store) Stats {
	stats := Stats{
		TotalUsers:             s.NodeCount(),
		TotalConnections:       s.EdgeCount(),
		ConnectionDistribution: make(map[int]int),
	}

	for i, id := range s.order {
		degree := len(s.adjacency[id])
		stats.ConnectionDistribution[degree]++

		if i == 0 || degree > stats.MostConnected.Connections {
			stats.MostConnected = MemberDegree{User: id, Connections: degree}
		}
		if i == 0 || degree < stats.LeastConnected.Connections {
			stats.LeastConnected = MemberDegree{User: id, Connections: degree}
		}
	}

	average := 0.0
	if stats.TotalUsers > 0 {
		average = float64(stats.TotalConnections*2) / float64(stats.TotalUsers)
	}
	stats.AverageConnections = fmt.Sprintf("%.2f", average)

	return stats
}
