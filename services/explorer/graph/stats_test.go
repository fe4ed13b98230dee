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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats_DefaultNetwork(t *testing.T) {
	stats := ComputeStats(DefaultNetwork())

	assert.Equal(t, 17, stats.TotalUsers)
	assert.Equal(t, 32, stats.TotalConnections)
	assert.Equal(t, "3.76", stats.AverageConnections)
	assert.Equal(t, MemberDegree{User: "Charlie", Connections: 5}, stats.MostConnected)
	assert.Equal(t, MemberDegree{User: "Diana", Connections: 1}, stats.LeastConnected)
	assert.Equal(t, map[int]int{1: 1, 3: 4, 4: 9, 5: 3}, stats.ConnectionDistribution)
}

func TestComputeStats_TiesGoToFirstLoaded(t *testing.T) {
	store, err := New([]Entry{
		{ID: "B", Neighbors: []string{"A"}},
		{ID: "A", Neighbors: []string{"B"}},
	})
	require.NoError(t, err)

	stats := ComputeStats(store)
	assert.Equal(t, "B", stats.MostConnected.User)
	assert.Equal(t, "B", stats.LeastConnected.User)
	assert.Equal(t, "1.00", stats.AverageConnections)
	assert.Equal(t, 1, stats.TotalConnections)
}

func TestComputeStats_JSONShape(t *testing.T) {
	store, err := New([]Entry{
		{ID: "A", Neighbors: []string{"B"}},
		{ID: "B", Neighbors: []string{"A"}},
		{ID: "C"},
	})
	require.NoError(t, err)

	data, err := json.Marshal(ComputeStats(store))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{
		"totalUsers", "totalConnections", "averageConnections",
		"mostConnected", "leastConnected", "connectionDistribution",
	} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, "0.67", decoded["averageConnections"])
	assert.Equal(t, map[string]any{"0": 1.0, "1": 2.0}, decoded["connectionDistribution"])
}

func TestEdges(t *testing.T) {
	store, err := New([]Entry{
		{ID: "A", Neighbors: []string{"B", "C"}},
		{ID: "B", Neighbors: []string{"A", "C"}},
		{ID: "C", Neighbors: []string{"A", "B"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []Edge{
		{From: "A", To: "B"},
		{From: "A", To: "C"},
		{From: "B", To: "C"},
	}, Edges(store))
}
