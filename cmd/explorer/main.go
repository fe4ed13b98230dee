// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command explorer serves and queries the Social Network Explorer.
//
// The explorer runs traced breadth-first and depth-first searches over a
// friendship graph and returns every intermediate step so a frontend can
// animate the traversal.
//
// Usage:
//
//	explorer serve                       # HTTP API on :3001
//	explorer serve --port 8080 --debug
//	explorer users
//	explorer path Alice Oliver --steps
//	explorer cycles --quota 3 --json
//	explorer stats
//
// Graph files:
//
//	explorer --graph configs/network.yaml serve
//	EXPLORER_GRAPH_FILE=configs/network.yaml explorer serve
//
// Example requests:
//
//	curl http://localhost:3001/health
//	curl -X POST http://localhost:3001/shortest-path \
//	  -H "Content-Type: application/json" \
//	  -d '{"from": "Alice", "to": "Oliver"}'
//	curl 'http://localhost:3001/cycles?quota=3'
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
