// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package explorer

import (
	"github.com/AleutianAI/SocialExplorer/services/explorer/graph"
	"github.com/AleutianAI/SocialExplorer/services/explorer/traverse"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeMissingUsers   = "MISSING_USERS"
	CodeUserNotFound   = "USER_NOT_FOUND"
	CodeInvalidQuota   = "INVALID_QUOTA"
	CodeInternalError  = "INTERNAL_ERROR"
)

// msgMissingUsers is the client-facing text for ErrMissingUsers.
const msgMissingUsers = "Both 'from' and 'to' users are required"

// ShortestPathRequest is the body of POST /shortest-path.
type ShortestPathRequest struct {
	// From is the starting member. Required.
	From string `json:"from" binding:"required"`

	// To is the target member. Required.
	To string `json:"to" binding:"required"`
}

// PathResponse is the response for POST /shortest-path.
type PathResponse struct {
	// Path lists members from start to target. Empty if unreachable.
	Path []string `json:"path"`

	// Length is the degrees of separation, or -1 if unreachable.
	Length int `json:"length"`

	// Found reports whether the target was reached.
	Found bool `json:"found"`

	// Steps is the BFS trace.
	Steps []traverse.BFSStep `json:"steps"`

	// Message summarizes the outcome.
	Message string `json:"message"`
}

// CyclesResponse is the response for GET /cycles.
type CyclesResponse struct {
	Cycles       [][]string         `json:"cycles"`
	Steps        []traverse.DFSStep `json:"steps"`
	Count        int                `json:"count"`
	Quota        int                `json:"quota"`
	QuotaReached bool               `json:"quota_reached"`
	Message      string             `json:"message"`
}

// UsersResponse is the response for GET /users.
type UsersResponse struct {
	Users []string `json:"users"`
}

// NodeInfo describes one member in GET /graph.
type NodeInfo struct {
	ID          string   `json:"id"`
	Connections int      `json:"connections"`
	Neighbors   []string `json:"neighbors"`
}

// GraphResponse is the response for GET /graph.
type GraphResponse struct {
	// Graph is the raw adjacency mapping.
	Graph map[string][]string `json:"graph"`

	// Nodes lists members in load order.
	Nodes []NodeInfo `json:"nodes"`

	// Edges lists unique undirected connections.
	Edges []graph.Edge `json:"edges"`

	// Stats summarizes the network.
	Stats graph.Stats `json:"stats"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
	NetworkSize int    `json:"networkSize"`
}

// ErrorResponse is returned for all client and server errors.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is the machine-readable error code.
	Code string `json:"code,omitempty"`
}

// NotFoundResponse is returned for unknown routes.
type NotFoundResponse struct {
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"availableEndpoints"`
}

// availableEndpoints is listed in every NotFoundResponse.
var availableEndpoints = []string{
	"GET /users",
	"GET /graph",
	"GET /stats",
	"POST /shortest-path",
	"GET /cycles",
	"GET /health",
}

func newPathResponse(r *traverse.PathResult) PathResponse {
	return PathResponse{
		Path:    r.Path,
		Length:  r.Length,
		Found:   r.Found,
		Steps:   r.Steps,
		Message: r.Message,
	}
}

func newCyclesResponse(r *traverse.CycleResult) CyclesResponse {
	return CyclesResponse{
		Cycles:       r.Cycles,
		Steps:        r.Steps,
		Count:        r.Count,
		Quota:        r.Quota,
		QuotaReached: r.QuotaReached,
		Message:      r.Message,
	}
}
