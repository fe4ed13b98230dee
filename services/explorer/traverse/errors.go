// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package traverse provides traced traversal engines over the social graph.
//
// Two engines are provided: a level-synchronous breadth-first search that
// finds a shortest path between two members, and a depth-first search that
// finds a bounded number of distinct simple cycles. Both record every
// algorithmic step so a client can replay the traversal.
//
// # Ownership Model
//
// Results and steps are created fresh per call and owned by the caller.
// Every slice inside a step is copied at the moment the step is recorded,
// so later progress of the algorithm never changes an earlier step.
//
// # Thread Safety
//
// Engines hold no mutable state between calls. A single BFS or DFS value
// may be shared by any number of goroutines as long as the underlying
// Graph is read-only.
package traverse

import "errors"

// Sentinel errors for traversal operations.
var (
	// ErrUnknownNode is returned when a traversal endpoint is not a member
	// of the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrInvalidQuota is returned when a cycle quota is less than one.
	ErrInvalidQuota = errors.New("cycle quota must be at least 1")
)
