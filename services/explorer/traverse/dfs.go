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
	"sort"
	"strings"
)

// DFS finds distinct simple cycles with a depth-first search.
//
// Thread Safety:
//
//	Safe for concurrent use. Each call owns its search state.
type DFS struct {
	graph Graph
}

// NewDFS creates a DFS engine over g.
func NewDFS(g Graph) *DFS {
	return &DFS{graph: g}
}

// FindCycles finds up to quota distinct cycles.
//
// Description:
//
//	Starts a depth-first search from every member in load order, each with
//	fresh visited and recursion-stack sets. A neighbor that is already on
//	the recursion stack, other than the member it was reached from, closes
//	a cycle made of the stack from that neighbor to the current member
//	plus the neighbor again. Cycles are identified by their vertex set;
//	one whose set was already accepted is ignored.
//
//	The quota is checked before each neighbor is examined. Once quota
//	cycles are accepted no further neighbors are explored, but every
//	member still on the stack records its backtrack step.
//
// Inputs:
//
//	ctx - Context for tracing. The search is never cancelled mid-run.
//	quota - Maximum number of cycles. Must be at least 1.
//
// Outputs:
//
//	*CycleResult - Cycles in discovery order and the trace.
//	error - ErrInvalidQuota if quota < 1.
//
// Example:
//
//	result, err := traverse.NewDFS(store).FindCycles(ctx, traverse.DefaultCycleQuota)
func (d *DFS) FindCycles(ctx context.Context, quota int) (*CycleResult, error) {
	_, span := startFindCyclesSpan(ctx, quota)
	defer span.End()

	if quota < 1 {
		err := fmt.Errorf("%w: got %d", ErrInvalidQuota, quota)
		failSpan(span, err)
		return nil, err
	}

	s := &cycleSearch{
		graph:    d.graph,
		quota:    quota,
		accepted: make(map[string]struct{}),
		cycles:   [][]string{},
		steps:    []DFSStep{},
	}

	rooted := make(map[string]struct{})
	for _, root := range d.graph.AllNodes() {
		if s.quotaReached() {
			break
		}
		if _, ok := rooted[root]; ok {
			continue
		}
		s.walk(root)
		rooted[root] = struct{}{}
	}

	result := &CycleResult{
		Cycles:       s.cycles,
		Steps:        s.steps,
		Count:        len(s.cycles),
		Quota:        quota,
		QuotaReached: s.quotaReached(),
		Message:      cycleMessage(len(s.cycles), s.quotaReached()),
	}
	setFindCyclesSpanResult(span, result)
	return result, nil
}

// cycleSearch is the state shared by all roots of one FindCycles call.
type cycleSearch struct {
	graph    Graph
	quota    int
	accepted map[string]struct{}
	cycles   [][]string
	steps    []DFSStep
}

func (s *cycleSearch) quotaReached() bool {
	return len(s.cycles) >= s.quota
}

// frame is one member on the explicit work stack.
type frame struct {
	node      string
	parent    string
	neighbors []string
	next      int
}

// walker is the per-root state of one depth-first search.
type walker struct {
	search  *cycleSearch
	visited *orderedSet
	stack   []string
	onStack map[string]int
	frames  []frame
}

// walk runs one depth-first search rooted at root.
func (s *cycleSearch) walk(root string) {
	w := &walker{
		search:  s,
		visited: newOrderedSet(),
		onStack: make(map[string]int),
	}

	w.enter(root, "")
	for len(w.frames) > 0 {
		top := &w.frames[len(w.frames)-1]
		if top.next >= len(top.neighbors) || s.quotaReached() {
			w.leave()
			continue
		}

		nbr := top.neighbors[top.next]
		top.next++

		if !w.visited.has(nbr) {
			w.enter(nbr, top.node)
			continue
		}
		if idx, ok := w.onStack[nbr]; ok && nbr != top.parent {
			w.closeCycle(top.node, idx, nbr)
		}
	}
}

// enter pushes node and records the visit step.
func (w *walker) enter(node, parent string) {
	w.visited.add(node)
	w.onStack[node] = len(w.stack)
	w.stack = append(w.stack, node)
	w.frames = append(w.frames, frame{
		node:      node,
		parent:    parent,
		neighbors: w.search.graph.Neighbors(node),
	})

	w.record(DFSStep{
		Action:  ActionVisit,
		Node:    node,
		Path:    copyPath(w.stack),
		Message: fmt.Sprintf("Visiting %s, current path: %s", node, joinPath(w.stack)),
	})
}

// leave pops the top member and records the backtrack step.
func (w *walker) leave() {
	top := w.frames[len(w.frames)-1]
	path := copyPath(w.stack)

	w.frames = w.frames[:len(w.frames)-1]
	w.stack = w.stack[:len(w.stack)-1]
	delete(w.onStack, top.node)

	w.record(DFSStep{
		Action:  ActionBacktrack,
		Node:    top.node,
		Path:    path,
		Message: "Backtracking from " + top.node,
	})
}

// closeCycle handles a back-edge from node to the stack member at idx.
func (w *walker) closeCycle(node string, idx int, target string) {
	cycle := extendPath(w.stack[idx:], target)
	key := cycleKey(cycle[:len(cycle)-1])
	if _, seen := w.search.accepted[key]; seen {
		return
	}
	w.search.accepted[key] = struct{}{}
	w.search.cycles = append(w.search.cycles, cycle)

	w.record(DFSStep{
		Action:  ActionCycleFound,
		Node:    node,
		Path:    copyPath(w.stack),
		Cycle:   copyPath(cycle),
		Message: "Cycle detected: " + joinPath(cycle),
	})
}

// record appends step with snapshots of the visited set and stack.
func (w *walker) record(step DFSStep) {
	step.Visited = w.visited.snapshot()
	step.Stack = copyPath(w.stack)
	w.search.steps = append(w.search.steps, step)
}

// cycleKey returns the vertex-set identity of a cycle.
func cycleKey(vertices []string) string {
	sorted := copyPath(vertices)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x00")
}

func cycleMessage(count int, quotaReached bool) string {
	if count == 0 {
		return "No friend loops detected in the network"
	}
	msg := fmt.Sprintf("Found %d friend loop(s)", count)
	if quotaReached {
		msg += "; quota reached, more loops may exist"
	}
	return msg
}
