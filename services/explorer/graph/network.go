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

// DefaultEntries returns the built-in social network used when no graph
// file is configured. Member and neighbor order are part of the contract:
// traces over this network are stable across releases.
func DefaultEntries() []Entry {
	return []Entry{
		{ID: "Alice", Neighbors: []string{"Bob", "Charlie", "Diana"}},
		{ID: "Bob", Neighbors: []string{"Alice", "David", "Charlie", "Eve"}},
		{ID: "Charlie", Neighbors: []string{"Alice", "Bob", "Elon", "Frank", "Grace"}},
		{ID: "David", Neighbors: []string{"Bob", "Eve", "Henry"}},
		{ID: "Elon", Neighbors: []string{"Charlie", "Frank", "Isabella"}},
		{ID: "Eve", Neighbors: []string{"Bob", "David", "Henry", "Jack"}},
		{ID: "Frank", Neighbors: []string{"Charlie", "Elon", "Grace", "Isabella", "Karen"}},
		{ID: "Grace", Neighbors: []string{"Charlie", "Frank", "Karen", "Luna"}},
		{ID: "Henry", Neighbors: []string{"David", "Eve", "Jack", "Mike"}},
		{ID: "Isabella", Neighbors: []string{"Elon", "Frank", "Karen", "Nina"}},
		{ID: "Jack", Neighbors: []string{"Eve", "Henry", "Mike", "Oliver"}},
		{ID: "Karen", Neighbors: []string{"Frank", "Grace", "Isabella", "Luna", "Nina"}},
		{ID: "Luna", Neighbors: []string{"Grace", "Karen", "Mike", "Nina"}},
		{ID: "Mike", Neighbors: []string{"Henry", "Jack", "Luna", "Oliver"}},
		{ID: "Nina", Neighbors: []string{"Isabella", "Karen", "Luna", "Oliver"}},
		{ID: "Oliver", Neighbors: []string{"Jack", "Mike", "Nina"}},
		{ID: "Diana", Neighbors: []string{"Alice"}},
	}
}

// DefaultNetwork builds a Store over DefaultEntries.
//
// The built-in data is known to be closed, so a failure here is a
// programming error and panics.
func DefaultNetwork() *Store {
	store, err := New(DefaultEntries())
	if err != nil {
		panic("graph: built-in network is invalid: " + err.Error())
	}
	return store
}
