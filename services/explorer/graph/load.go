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
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// networkKey is the top-level key holding the adjacency mapping.
const networkKey = "network"

// Parse decodes a graph document into entries.
//
// Description:
//
//	Accepts YAML or JSON (a YAML 1.2 subset) of the form
//
//	    network:
//	      Alice: [Bob, Charlie]
//	      Bob: [Alice]
//
//	The document is walked at the node level so the mapping order of
//	"network" becomes the member load order. A member with a null value
//	has no neighbors.
//
// Inputs:
//
//	data - Raw document bytes.
//
// Outputs:
//
//	[]Entry - Members in document order.
//	error - Wraps ErrInvalidDocument if the shape is wrong.
func Parse(data []byte) ([]Entry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidDocument)
	}

	var network *yaml.Node
	for i := 0; i+1 < len(top.Content); i += 2 {
		if top.Content[i].Value == networkKey {
			network = top.Content[i+1]
			break
		}
	}
	if network == nil {
		return nil, fmt.Errorf("%w: missing %q key", ErrInvalidDocument, networkKey)
	}
	if network.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %q must be a mapping (line %d)", ErrInvalidDocument, networkKey, network.Line)
	}

	entries := make([]Entry, 0, len(network.Content)/2)
	for i := 0; i+1 < len(network.Content); i += 2 {
		key, value := network.Content[i], network.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: member key must be a scalar (line %d)", ErrInvalidDocument, key.Line)
		}

		neighbors, err := decodeNeighbors(value)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", key.Value, err)
		}
		entries = append(entries, Entry{ID: key.Value, Neighbors: neighbors})
	}

	return entries, nil
}

// decodeNeighbors converts a sequence node into a neighbor list.
func decodeNeighbors(value *yaml.Node) ([]string, error) {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return []string{}, nil
	}
	if value.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: neighbors must be a list (line %d)", ErrInvalidDocument, value.Line)
	}

	neighbors := make([]string, 0, len(value.Content))
	for _, item := range value.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: neighbor must be a scalar (line %d)", ErrInvalidDocument, item.Line)
		}
		neighbors = append(neighbors, item.Value)
	}
	return neighbors, nil
}

// Load reads a graph document from path and builds a Store.
//
// Description:
//
//	Reads, parses and validates the file in one step. Any failure is a
//	fatal configuration error for the caller; a process must not start
//	serving traversals over a malformed graph.
//
// Inputs:
//
//	ctx - Context for tracing.
//	path - Path to a YAML or JSON graph document.
//	opts - Optional store limits.
//
// Outputs:
//
//	*Store - The frozen store.
//	error - Non-nil on read, parse or validation failure.
//
// Example:
//
//	store, err := graph.Load(ctx, "network.yaml")
//	if err != nil {
//	    return fmt.Errorf("load graph: %w", err)
//	}
func Load(ctx context.Context, path string, opts ...StoreOption) (*Store, error) {
	start := time.Now()
	ctx, span := startLoadSpan(ctx, path)
	defer span.End()

	store, err := load(path, opts...)
	if err != nil {
		span.RecordError(err)
		recordLoadMetrics(ctx, time.Since(start), 0, 0, false)
		return nil, err
	}

	setLoadSpanResult(span, store.NodeCount(), store.EdgeCount())
	recordLoadMetrics(ctx, time.Since(start), store.NodeCount(), store.EdgeCount(), true)
	return store, nil
}

func load(path string, opts ...StoreOption) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file %s: %w", path, err)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse graph file %s: %w", path, err)
	}

	store, err := New(entries, opts...)
	if err != nil {
		return nil, fmt.Errorf("build graph from %s: %w", path, err)
	}
	return store, nil
}
