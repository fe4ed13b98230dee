// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package graph provides the immutable social graph store.
//
// The store holds an adjacency list keyed by member name. Edges are
// logically undirected, but each member's neighbor list is kept exactly as
// declared: the store never mirrors edges, and traversal code must respect
// whatever adjacency was loaded.
//
// # Ownership Model
//
// The store copies its input on construction and hands out copies from
// every accessor. Callers may freely modify returned slices.
//
// # Thread Safety
//
// A Store is read-only after New returns. It can be shared by any number
// of goroutines without locking.
//
// # Lifecycle
//
//  1. Load entries with Load, Parse, or DefaultEntries
//  2. Build the store with New (validates the closed-graph invariant)
//  3. Query with Neighbors, Exists, AllNodes
//
// There is no teardown; the store lives until process exit.
package graph

import "errors"

// Sentinel errors for graph construction and loading.
var (
	// ErrEmptyGraph is returned when a graph has no members.
	ErrEmptyGraph = errors.New("graph has no members")

	// ErrEmptyNodeID is returned when a member or neighbor name is empty.
	ErrEmptyNodeID = errors.New("empty node ID")

	// ErrDuplicateNode is returned when the same member is declared twice.
	ErrDuplicateNode = errors.New("duplicate node ID")

	// ErrUnknownNeighbor is returned when a neighbor list references a
	// member that is not declared as a key. The graph must be closed.
	ErrUnknownNeighbor = errors.New("neighbor references unknown node")

	// ErrSelfLoop is returned when a member lists itself as a neighbor.
	ErrSelfLoop = errors.New("node lists itself as a neighbor")

	// ErrDuplicateNeighbor is returned when a neighbor appears twice in the
	// same adjacency list.
	ErrDuplicateNeighbor = errors.New("duplicate neighbor")

	// ErrMaxNodesExceeded is returned when the input has more members than
	// the configured limit.
	ErrMaxNodesExceeded = errors.New("maximum node count exceeded")

	// ErrInvalidDocument is returned when a graph file cannot be decoded
	// into a network mapping.
	ErrInvalidDocument = errors.New("invalid graph document")
)
