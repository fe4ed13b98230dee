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
	"fmt"
	"strings"
)

// BFS finds shortest paths with a level-synchronous breadth-first search.
//
// Thread Safety:
//
//	Safe for concurrent use. Each call owns its queue and visited set.
type BFS struct {
	graph Graph
}

// NewBFS creates a BFS engine over g.
func NewBFS(g Graph) *BFS {
	return &BFS{graph: g}
}

// ShortestPath finds a minimum-edge path from one member to another.
//
// Description:
//
//	Explores the graph one level at a time. The queue holds partial paths;
//	at the start of each level its current length is fixed and exactly that
//	many paths are dequeued before the level advances. A member is marked
//	visited when its path is dequeued, not when it is enqueued, so the same
//	member may sit in the queue several times and later copies are skipped.
//	The first dequeued path that ends at the target wins.
//
//	One step is recorded after every completed level, plus a terminal step
//	when the target is dequeued. When from equals to, the result is the
//	single-member path with one found step.
//
//	An unreachable target is not an error: the result has an empty path,
//	Length -1, Found false, and the full trace.
//
// Inputs:
//
//	ctx - Context for tracing. The search is never cancelled mid-run.
//	from - Starting member. Must exist.
//	to - Target member. Must exist.
//
// Outputs:
//
//	*PathResult - Path, length and trace.
//	error - Wraps ErrUnknownNode if either endpoint is not a member.
//
// Example:
//
//	result, err := traverse.NewBFS(store).ShortestPath(ctx, "Alice", "Oliver")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Path, result.Length)
func (b *BFS) ShortestPath(ctx context.Context, from, to string) (*PathResult, error) {
	_, span := startShortestPathSpan(ctx, from, to)
	defer span.End()

	if !b.graph.Exists(from) {
		err := fmt.Errorf("source %q: %w", from, ErrUnknownNode)
		failSpan(span, err)
		return nil, err
	}
	if !b.graph.Exists(to) {
		err := fmt.Errorf("target %q: %w", to, ErrUnknownNode)
		failSpan(span, err)
		return nil, err
	}

	result := b.search(from, to)
	setShortestPathSpanResult(span, result)
	return result, nil
}

func (b *BFS) search(from, to string) *PathResult {
	result := &PathResult{
		From:   from,
		To:     to,
		Path:   []string{},
		Length: -1,
		Steps:  []BFSStep{},
	}

	if from == to {
		result.Path = []string{from}
		result.Length = 0
		result.Found = true
		result.Steps = append(result.Steps, BFSStep{
			Level:   0,
			Queue:   [][]string{{from}},
			Visited: []string{},
			Current: from,
			Found:   true,
			Message: "Source and destination are the same user",
		})
		result.Message = "Source and destination are the same user"
		return result
	}

	queue := [][]string{{from}}
	visited := newOrderedSet()

	for level := 0; len(queue) > 0; level++ {
		size := len(queue)
		exploring := make([]string, 0, size)

		for i := 0; i < size; i++ {
			path := queue[0]
			queue = queue[1:]
			current := path[len(path)-1]

			if current == to {
				result.Steps = append(result.Steps, BFSStep{
					Level:   level,
					Queue:   snapshotPaths(queue),
					Visited: visited.snapshot(),
					Current: current,
					Path:    copyPath(path),
					Found:   true,
					Message: "Target found! Path: " + joinPath(path),
				})
				result.Path = copyPath(path)
				result.Length = len(path) - 1
				result.Found = true
				result.Message = fmt.Sprintf("Shortest path found with %d degrees of separation", result.Length)
				return result
			}

			if visited.has(current) {
				continue
			}
			visited.add(current)
			exploring = append(exploring, current)

			for _, nbr := range b.graph.Neighbors(current) {
				if !visited.has(nbr) {
					queue = append(queue, extendPath(path, nbr))
				}
			}
		}

		result.Steps = append(result.Steps, BFSStep{
			Level:     level,
			Queue:     snapshotPaths(queue),
			Visited:   visited.snapshot(),
			Exploring: exploring,
			Found:     false,
			Message:   fmt.Sprintf("Level %d: Exploring %s", level, strings.Join(exploring, ", ")),
		})
	}

	result.Message = "No path found between the specified users"
	return result
}
