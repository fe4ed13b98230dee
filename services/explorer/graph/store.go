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
)

// Default configuration values.
const (
	// DefaultMaxNodes is the default maximum number of members in a store.
	DefaultMaxNodes = 100_000
)

// Entry is one member of the network together with its declared neighbors.
//
// The order of Neighbors is significant: traversal engines expand
// neighbors in exactly this order, which makes traces reproducible.
type Entry struct {
	// ID is the member name. Required, must be unique.
	ID string `json:"id" yaml:"id"`

	// Neighbors lists the members this member is connected to.
	Neighbors []string `json:"neighbors" yaml:"neighbors"`
}

// StoreOptions configures store construction limits.
type StoreOptions struct {
	// MaxNodes is the maximum number of members (default: 100,000).
	MaxNodes int
}

// DefaultStoreOptions returns sensible defaults for store construction.
func DefaultStoreOptions() StoreOptions {
	return StoreOptions{
		MaxNodes: DefaultMaxNodes,
	}
}

// StoreOption is a functional option for configuring a Store.
type StoreOption func(*StoreOptions)

// WithMaxNodes sets the maximum number of members the store accepts.
//
// If n <= 0, the default (100,000) is kept.
func WithMaxNodes(n int) StoreOption {
	return func(o *StoreOptions) {
		if n > 0 {
			o.MaxNodes = n
		}
	}
}

// Store is the immutable adjacency-list representation of the social graph.
//
// Thread Safety:
//
//	Safe for concurrent use. A Store is never modified after New returns.
type Store struct {
	// order holds member IDs in load order.
	order []string

	// adjacency maps member ID to its declared neighbor list.
	adjacency map[string][]string

	// edgeCount is the number of unique undirected member pairs.
	edgeCount int
}

// New builds a Store from the given entries.
//
// Description:
//
//	Copies the entries, preserving member order and neighbor order, and
//	validates that the graph is closed: every neighbor must itself be a
//	declared member. Any violation is a fatal configuration error.
//
// Inputs:
//
//	entries - Members in load order. Must not be empty.
//	opts - Optional construction limits.
//
// Outputs:
//
//	*Store - The frozen store.
//	error - Non-nil if the adjacency is malformed. Wraps one of
//	        ErrEmptyGraph, ErrEmptyNodeID, ErrDuplicateNode, ErrSelfLoop,
//	        ErrDuplicateNeighbor, ErrUnknownNeighbor, ErrMaxNodesExceeded.
//
// Example:
//
//	store, err := graph.New([]graph.Entry{
//	    {ID: "A", Neighbors: []string{"B"}},
//	    {ID: "B", Neighbors: []string{"A"}},
//	})
func New(entries []Entry, opts ...StoreOption) (*Store, error) {
	options := DefaultStoreOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if len(entries) == 0 {
		return nil, ErrEmptyGraph
	}
	if len(entries) > options.MaxNodes {
		return nil, fmt.Errorf("%w: %d members, limit %d", ErrMaxNodesExceeded, len(entries), options.MaxNodes)
	}

	s := &Store{
		order:     make([]string, 0, len(entries)),
		adjacency: make(map[string][]string, len(entries)),
	}

	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("entry[%d]: %w", i, ErrEmptyNodeID)
		}
		if _, exists := s.adjacency[e.ID]; exists {
			return nil, fmt.Errorf("entry[%d]: %w: %q", i, ErrDuplicateNode, e.ID)
		}
		s.order = append(s.order, e.ID)
		s.adjacency[e.ID] = append([]string{}, e.Neighbors...)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	s.edgeCount = len(uniqueEdges(s))
	return s, nil
}

// validate checks every neighbor list against the closed-graph invariant.
func (s *Store) validate() error {
	for _, id := range s.order {
		seen := make(map[string]struct{}, len(s.adjacency[id]))
		for _, nbr := range s.adjacency[id] {
			if nbr == "" {
				return fmt.Errorf("node %q: %w", id, ErrEmptyNodeID)
			}
			if nbr == id {
				return fmt.Errorf("node %q: %w", id, ErrSelfLoop)
			}
			if _, dup := seen[nbr]; dup {
				return fmt.Errorf("node %q: %w: %q", id, ErrDuplicateNeighbor, nbr)
			}
			seen[nbr] = struct{}{}
			if _, ok := s.adjacency[nbr]; !ok {
				return fmt.Errorf("node %q: %w: %q", id, ErrUnknownNeighbor, nbr)
			}
		}
	}
	return nil
}

// Neighbors returns the declared neighbors of node in declared order.
//
// Returns an empty slice when the node has no edges or does not exist.
// The returned slice is a copy.
func (s *Store) Neighbors(node string) []string {
	return append([]string{}, s.adjacency[node]...)
}

// Exists reports whether node is a member of the graph.
func (s *Store) Exists(node string) bool {
	_, ok := s.adjacency[node]
	return ok
}

// AllNodes returns every member in load order. The returned slice is a copy.
func (s *Store) AllNodes() []string {
	return append([]string{}, s.order...)
}

// NodeCount returns the number of members.
func (s *Store) NodeCount() int {
	return len(s.order)
}

// EdgeCount returns the number of unique undirected connections.
//
// A pair declared in both directions counts once; a pair declared in only
// one direction also counts once.
func (s *Store) EdgeCount() int {
	return s.edgeCount
}

// Degree returns the length of node's declared neighbor list.
func (s *Store) Degree(node string) int {
	return len(s.adjacency[node])
}

// Adjacency returns a copy of the full adjacency as entries in load order.
func (s *Store) Adjacency() []Entry {
	entries := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, Entry{
			ID:        id,
			Neighbors: s.Neighbors(id),
		})
	}
	return entries
}
