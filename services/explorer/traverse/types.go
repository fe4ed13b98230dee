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

import "strings"

// DefaultCycleQuota is the number of cycles FindCycles looks for when the
// caller has no preference.
const DefaultCycleQuota = 5

// pathSeparator joins node IDs in human-readable step messages.
const pathSeparator = " → "

// Graph is the read-only view of the social graph the engines traverse.
//
// *graph.Store satisfies this interface.
type Graph interface {
	// Neighbors returns the declared neighbors of node in declared order.
	Neighbors(node string) []string

	// Exists reports whether node is a member.
	Exists(node string) bool

	// AllNodes returns every member in load order.
	AllNodes() []string
}

// PathResult is the outcome of a traced shortest path search.
type PathResult struct {
	// From is the starting member.
	From string `json:"from"`

	// To is the target member.
	To string `json:"to"`

	// Path lists members from From to To inclusive. Empty if unreachable.
	Path []string `json:"path"`

	// Length is the number of edges in Path, or -1 if no path exists.
	Length int `json:"length"`

	// Found reports whether To was reached.
	Found bool `json:"found"`

	// Steps is the chronological trace of the search.
	Steps []BFSStep `json:"steps"`

	// Message summarizes the outcome.
	Message string `json:"message"`
}

// BFSStep is one recorded moment of the breadth-first search.
//
// A level step has Exploring set and Found false. The terminal step that
// reaches the target has Current, Path and Found set instead.
type BFSStep struct {
	Level     int        `json:"level"`
	Queue     [][]string `json:"queue"`
	Visited   []string   `json:"visited"`
	Current   string     `json:"current,omitempty"`
	Exploring []string   `json:"exploring,omitempty"`
	Path      []string   `json:"path,omitempty"`
	Found     bool       `json:"found"`
	Message   string     `json:"message,omitempty"`
}

// StepAction identifies what a DFS step records.
type StepAction string

const (
	// ActionVisit records a member being pushed onto the recursion stack.
	ActionVisit StepAction = "visit"

	// ActionCycleFound records a newly accepted cycle.
	ActionCycleFound StepAction = "cycle_found"

	// ActionBacktrack records a member being popped off the recursion stack.
	ActionBacktrack StepAction = "backtrack"
)

// CycleResult is the outcome of a traced cycle search.
type CycleResult struct {
	// Cycles are closed loops with the first member repeated at the end.
	Cycles [][]string `json:"cycles"`

	// Steps is the chronological trace of the search.
	Steps []DFSStep `json:"steps"`

	// Count is len(Cycles).
	Count int `json:"count"`

	// Quota is the number of cycles the search was asked for.
	Quota int `json:"quota"`

	// QuotaReached reports that the search stopped because Quota cycles
	// were found. When true, Cycles is not an exhaustive enumeration.
	QuotaReached bool `json:"quota_reached"`

	// Message summarizes the outcome.
	Message string `json:"message"`
}

// DFSStep is one recorded moment of the depth-first search.
type DFSStep struct {
	Action  StepAction `json:"action"`
	Node    string     `json:"node"`
	Path    []string   `json:"path"`
	Visited []string   `json:"visited"`
	Stack   []string   `json:"stack"`
	Cycle   []string   `json:"cycle,omitempty"`
	Message string     `json:"message"`
}

// orderedSet is a set that remembers insertion order.
type orderedSet struct {
	members map[string]struct{}
	order   []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{members: make(map[string]struct{})}
}

func (s *orderedSet) add(id string) {
	if _, ok := s.members[id]; ok {
		return
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *orderedSet) has(id string) bool {
	_, ok := s.members[id]
	return ok
}

func (s *orderedSet) len() int {
	return len(s.order)
}

// snapshot returns the members in insertion order as a fresh slice.
func (s *orderedSet) snapshot() []string {
	return copyPath(s.order)
}

// copyPath returns an independent copy of p. Never returns nil.
func copyPath(p []string) []string {
	out := make([]string, len(p))
	copy(out, p)
	return out
}

// extendPath returns a new path of p followed by next.
func extendPath(p []string, next string) []string {
	out := make([]string, len(p)+1)
	copy(out, p)
	out[len(p)] = next
	return out
}

// snapshotPaths deep-copies a queue of paths.
func snapshotPaths(paths [][]string) [][]string {
	out := make([][]string, len(paths))
	for i, p := range paths {
		out[i] = copyPath(p)
	}
	return out
}

func joinPath(p []string) string {
	return strings.Join(p, pathSeparator)
}
