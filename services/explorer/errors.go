// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package explorer serves the social graph over HTTP.
//
// The Service validates caller input and runs the traced BFS and DFS
// engines; Handlers shape results as JSON for the animation frontend.
//
// # Thread Safety
//
// Service and Handlers are safe for concurrent use. The graph store is
// immutable and every traversal owns its own state.
package explorer

import (
	"errors"
	"fmt"
)

// Sentinel errors for the explorer service.
var (
	// ErrMissingUsers indicates a path request without both endpoints.
	ErrMissingUsers = errors.New("both from and to users are required")

	// ErrUserNotFound indicates a path endpoint that is not a member.
	// Returned errors are *UnknownUserError values matching this sentinel.
	ErrUserNotFound = errors.New("user not found")

	// ErrQuotaOutOfRange indicates a cycle quota outside [1, max].
	ErrQuotaOutOfRange = errors.New("cycle quota out of range")
)

// UnknownUserError names the member that could not be found.
type UnknownUserError struct {
	User string
}

// Error returns the client-facing message.
func (e *UnknownUserError) Error() string {
	return fmt.Sprintf("User '%s' not found in the network", e.User)
}

// Is makes errors.Is(err, ErrUserNotFound) report true.
func (e *UnknownUserError) Is(target error) bool {
	return target == ErrUserNotFound
}
