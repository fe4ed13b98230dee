// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package traverse

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/AleutianAI/SocialExplorer/services/explorer/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStore(t *testing.T, entries ...graph.Entry) *graph.Store {
	t.Helper()
	store, err := graph.New(entries)
	require.NoError(t, err)
	return store
}

func lineGraph(t *testing.T) *graph.Store {
	return mustStore(t,
		graph.Entry{ID: "A", Neighbors: []string{"B"}},
		graph.Entry{ID: "B", Neighbors: []string{"A", "C"}},
		graph.Entry{ID: "C", Neighbors: []string{"B"}},
	)
}

func TestShortestPath_Line(t *testing.T) {
	result, err := NewBFS(lineGraph(t)).ShortestPath(context.Background(), "A", "C")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, result.Path)
	assert.Equal(t, 2, result.Length)
	assert.True(t, result.Found)
	assert.Equal(t, "Shortest path found with 2 degrees of separation", result.Message)

	want := []BFSStep{
		{
			Level:     0,
			Queue:     [][]string{{"A", "B"}},
			Visited:   []string{"A"},
			Exploring: []string{"A"},
			Message:   "Level 0: Exploring A",
		},
		{
			Level:     1,
			Queue:     [][]string{{"A", "B", "C"}},
			Visited:   []string{"A", "B"},
			Exploring: []string{"B"},
			Message:   "Level 1: Exploring B",
		},
		{
			Level:   2,
			Queue:   [][]string{},
			Visited: []string{"A", "B"},
			Current: "C",
			Path:    []string{"A", "B", "C"},
			Found:   true,
			Message: "Target found! Path: A → B → C",
		},
	}
	assert.Equal(t, want, result.Steps)
}

func TestShortestPath_SameNode(t *testing.T) {
	result, err := NewBFS(lineGraph(t)).ShortestPath(context.Background(), "A", "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, result.Path)
	assert.Equal(t, 0, result.Length)
	assert.True(t, result.Found)
	require.Len(t, result.Steps, 1)

	step := result.Steps[0]
	assert.Equal(t, 0, step.Level)
	assert.Equal(t, [][]string{{"A"}}, step.Queue)
	assert.Equal(t, []string{}, step.Visited)
	assert.Equal(t, "A", step.Current)
	assert.True(t, step.Found)

	data, err := json.Marshal(step)
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":0,"queue":[["A"]],"visited":[],"current":"A","found":true,"message":"Source and destination are the same user"}`, string(data))
}

func TestShortestPath_Disconnected(t *testing.T) {
	store := mustStore(t,
		graph.Entry{ID: "A", Neighbors: []string{"B"}},
		graph.Entry{ID: "B", Neighbors: []string{"A"}},
		graph.Entry{ID: "C", Neighbors: []string{"D"}},
		graph.Entry{ID: "D", Neighbors: []string{"C"}},
	)

	result, err := NewBFS(store).ShortestPath(context.Background(), "A", "C")
	require.NoError(t, err)

	assert.Empty(t, result.Path)
	assert.NotNil(t, result.Path)
	assert.Equal(t, -1, result.Length)
	assert.False(t, result.Found)
	assert.Equal(t, "No path found between the specified users", result.Message)

	require.NotEmpty(t, result.Steps)
	for _, step := range result.Steps {
		assert.False(t, step.Found)
	}
	last := result.Steps[len(result.Steps)-1]
	assert.Empty(t, last.Queue)
	assert.ElementsMatch(t, []string{"A", "B"}, last.Visited)
}

func TestShortestPath_UnknownNode(t *testing.T) {
	bfs := NewBFS(lineGraph(t))

	_, err := bfs.ShortestPath(context.Background(), "Z", "A")
	assert.ErrorIs(t, err, ErrUnknownNode)

	_, err = bfs.ShortestPath(context.Background(), "A", "Z")
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestShortestPath_AsymmetricEdges(t *testing.T) {
	// B -> A is not declared, so A is unreachable from B.
	store := mustStore(t,
		graph.Entry{ID: "A", Neighbors: []string{"B"}},
		graph.Entry{ID: "B"},
	)
	bfs := NewBFS(store)

	forward, err := bfs.ShortestPath(context.Background(), "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1, forward.Length)

	backward, err := bfs.ShortestPath(context.Background(), "B", "A")
	require.NoError(t, err)
	assert.False(t, backward.Found)
}

func TestShortestPath_MatchesReferenceDistance(t *testing.T) {
	store := graph.DefaultNetwork()
	bfs := NewBFS(store)
	nodes := store.AllNodes()

	for _, from := range nodes {
		dist := referenceDistances(store, from)
		for _, to := range nodes {
			result, err := bfs.ShortestPath(context.Background(), from, to)
			require.NoError(t, err)

			want, reachable := dist[to]
			if !reachable {
				assert.Empty(t, result.Path, "%s->%s", from, to)
				continue
			}
			assert.Equal(t, want, result.Length, "%s->%s", from, to)
			assertWalk(t, store, result.Path)
			assert.Equal(t, from, result.Path[0])
			assert.Equal(t, to, result.Path[len(result.Path)-1])
		}
	}
}

func TestShortestPath_TraceProperties(t *testing.T) {
	store := graph.DefaultNetwork()
	result, err := NewBFS(store).ShortestPath(context.Background(), "Diana", "Oliver")
	require.NoError(t, err)
	require.True(t, result.Found)

	prev := 0
	for i, step := range result.Steps {
		assert.GreaterOrEqual(t, len(step.Visited), prev, "step %d", i)
		assert.LessOrEqual(t, len(step.Visited), store.NodeCount())
		assert.Equal(t, i, step.Level)
		prev = len(step.Visited)
	}
	assert.True(t, result.Steps[len(result.Steps)-1].Found)

	t.Run("steps do not share storage", func(t *testing.T) {
		before, err := json.Marshal(result.Steps[1:])
		require.NoError(t, err)

		result.Steps[0].Visited[0] = "mutated"
		if len(result.Steps[0].Queue) > 0 {
			result.Steps[0].Queue[0][0] = "mutated"
		}
		result.Path[0] = "mutated"

		after, err := json.Marshal(result.Steps[1:])
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
	})
}

func TestShortestPath_DeterministicJSON(t *testing.T) {
	bfs := NewBFS(graph.DefaultNetwork())

	first, err := bfs.ShortestPath(context.Background(), "Alice", "Nina")
	require.NoError(t, err)
	second, err := bfs.ShortestPath(context.Background(), "Alice", "Nina")
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

// referenceDistances is a plain BFS that marks members on enqueue.
func referenceDistances(g Graph, from string) map[string]int {
	dist := map[string]int{from: 0}
	queue := []string{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, nbr := range g.Neighbors(current) {
			if _, seen := dist[nbr]; !seen {
				dist[nbr] = dist[current] + 1
				queue = append(queue, nbr)
			}
		}
	}
	return dist
}

// assertWalk checks that consecutive members of p are declared neighbors
// and that no member repeats.
func assertWalk(t *testing.T, g Graph, p []string) {
	t.Helper()
	seen := make(map[string]bool, len(p))
	for i, id := range p {
		assert.False(t, seen[id], "member %s repeats in %v", id, p)
		seen[id] = true
		if i > 0 {
			assert.Contains(t, g.Neighbors(p[i-1]), id, "no edge %s-%s", p[i-1], id)
		}
	}
}
