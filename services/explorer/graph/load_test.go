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
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse_YAML(t *testing.T) {
	doc := `
network:
  Zed: [Amy, Bo]
  Amy: [Zed]
  Bo:
    - Zed
  Cy:
`
	entries, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []Entry{
		{ID: "Zed", Neighbors: []string{"Amy", "Bo"}},
		{ID: "Amy", Neighbors: []string{"Zed"}},
		{ID: "Bo", Neighbors: []string{"Zed"}},
		{ID: "Cy", Neighbors: []string{}},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %+v, want %+v", entries, want)
	}
}

func TestParse_JSON(t *testing.T) {
	doc := `{"network": {"B": ["A"], "A": ["B", "C"], "C": ["A"]}}`

	entries, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var ids []string
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	if !reflect.DeepEqual(ids, []string{"B", "A", "C"}) {
		t.Errorf("order = %v, want document order [B A C]", ids)
	}
	if !reflect.DeepEqual(entries[1].Neighbors, []string{"B", "C"}) {
		t.Errorf("A neighbors = %v", entries[1].Neighbors)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"not a mapping", "- a\n- b\n"},
		{"missing network key", "people:\n  A: [B]\n"},
		{"network not a mapping", "network: [A, B]\n"},
		{"neighbors not a list", "network:\n  A: B\n"},
		{"nested neighbor", "network:\n  A: [[B]]\n"},
		{"malformed yaml", "network: {A: [B\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("expected ErrInvalidDocument, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.yaml")
		writeFile(t, path, "network:\n  A: [B]\n  B: [A, C]\n  C: [B]\n")

		store, err := Load(ctx, path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if store.NodeCount() != 3 {
			t.Errorf("NodeCount = %d, want 3", store.NodeCount())
		}
		if store.EdgeCount() != 2 {
			t.Errorf("EdgeCount = %d, want 2", store.EdgeCount())
		}
	})

	t.Run("dangling neighbor is fatal", func(t *testing.T) {
		path := filepath.Join(dir, "dangling.yaml")
		writeFile(t, path, "network:\n  A: [B, Ghost]\n  B: [A]\n")

		_, err := Load(ctx, path)
		if !errors.Is(err, ErrUnknownNeighbor) {
			t.Errorf("expected ErrUnknownNeighbor, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(ctx, filepath.Join(dir, "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})

	t.Run("limit applies", func(t *testing.T) {
		path := filepath.Join(dir, "limit.yaml")
		writeFile(t, path, "network:\n  A: [B]\n  B: [A]\n")

		_, err := Load(ctx, path, WithMaxNodes(1))
		if !errors.Is(err, ErrMaxNodesExceeded) {
			t.Errorf("expected ErrMaxNodesExceeded, got %v", err)
		}
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_SampleNetworkMatchesDefault(t *testing.T) {
	store, err := Load(context.Background(), filepath.Join("..", "..", "..", "configs", "network.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(store.Adjacency(), DefaultEntries()) {
		t.Errorf("configs/network.yaml differs from DefaultEntries")
	}
}
