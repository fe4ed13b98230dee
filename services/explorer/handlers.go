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
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/AleutianAI/SocialExplorer/services/explorer/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// requestIDHeader carries the request ID in both directions.
const requestIDHeader = "X-Request-ID"

// Handlers contains the HTTP handlers for the explorer API.
type Handlers struct {
	svc     *Service
	metrics *telemetry.Metrics
}

// NewHandlers creates handlers for the given service.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// WithMetrics counts error responses on m.
func (h *Handlers) WithMetrics(m *telemetry.Metrics) *Handlers {
	h.metrics = m
	return h
}

// HandleUsers handles GET /users.
func (h *Handlers) HandleUsers(c *gin.Context) {
	c.JSON(http.StatusOK, UsersResponse{Users: h.svc.ListUsers()})
}

// HandleGraph handles GET /graph.
//
// Description:
//
//	Returns the adjacency mapping, a per-member node list with degrees in
//	load order, the unique edge list and the network statistics.
func (h *Handlers) HandleGraph(c *gin.Context) {
	entries := h.svc.Adjacency()

	adjacency := make(map[string][]string, len(entries))
	nodes := make([]NodeInfo, 0, len(entries))
	for _, e := range entries {
		adjacency[e.ID] = e.Neighbors
		nodes = append(nodes, NodeInfo{
			ID:          e.ID,
			Connections: len(e.Neighbors),
			Neighbors:   e.Neighbors,
		})
	}

	c.JSON(http.StatusOK, GraphResponse{
		Graph: adjacency,
		Nodes: nodes,
		Edges: h.svc.Edges(),
		Stats: h.svc.Stats(),
	})
}

// HandleStats handles GET /stats.
func (h *Handlers) HandleStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats())
}

// HandleShortestPath handles POST /shortest-path.
//
// Description:
//
//	Runs the traced BFS between two members and returns the path and the
//	full step trace. An unreachable target is a 200 with an empty path.
//
// Request Body:
//
//	ShortestPathRequest
//
// Response:
//
//	200 OK: PathResponse
//	400 Bad Request: INVALID_REQUEST, MISSING_USERS or USER_NOT_FOUND
func (h *Handlers) HandleShortestPath(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := telemetry.LoggerWithTrace(c.Request.Context(),
		slog.With("request_id", requestID, "handler", "HandleShortestPath"))

	var req ShortestPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) || errors.Is(err, io.EOF) {
			logger.Warn("Missing users in request", "error", err)
			h.respondError(c, http.StatusBadRequest, msgMissingUsers, CodeMissingUsers)
			return
		}
		logger.Warn("Invalid request body", "error", err)
		h.respondError(c, http.StatusBadRequest, "Invalid request body", CodeInvalidRequest)
		return
	}

	result, err := h.svc.ShortestPath(c.Request.Context(), req.From, req.To)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingUsers):
			h.respondError(c, http.StatusBadRequest, msgMissingUsers, CodeMissingUsers)
		case errors.Is(err, ErrUserNotFound):
			logger.Info("Unknown user", "error", err)
			h.respondError(c, http.StatusBadRequest, err.Error(), CodeUserNotFound)
		default:
			logger.Error("Shortest path failed", "error", err)
			h.respondError(c, http.StatusInternalServerError, "Internal server error", CodeInternalError)
		}
		return
	}

	logger.Info("Shortest path served",
		"from", req.From,
		"to", req.To,
		"found", result.Found,
		"length", result.Length,
	)
	c.JSON(http.StatusOK, newPathResponse(result))
}

// HandleCycles handles GET /cycles.
//
// Query Parameters:
//
//	quota: Number of cycles to find (optional, default from config)
//
// Response:
//
//	200 OK: CyclesResponse
//	400 Bad Request: INVALID_QUOTA
func (h *Handlers) HandleCycles(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := telemetry.LoggerWithTrace(c.Request.Context(),
		slog.With("request_id", requestID, "handler", "HandleCycles"))

	quota := h.svc.DefaultCycleQuota()
	if raw := c.Query("quota"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("Invalid quota parameter", "quota", raw)
			h.respondError(c, http.StatusBadRequest, "quota must be an integer", CodeInvalidQuota)
			return
		}
		quota = parsed
	}

	result, err := h.svc.FindCycles(c.Request.Context(), quota)
	if err != nil {
		if errors.Is(err, ErrQuotaOutOfRange) {
			logger.Warn("Quota out of range", "error", err)
			h.respondError(c, http.StatusBadRequest, err.Error(), CodeInvalidQuota)
			return
		}
		logger.Error("Cycle detection failed", "error", err)
		h.respondError(c, http.StatusInternalServerError, "Internal server error", CodeInternalError)
		return
	}

	logger.Info("Cycles served", "quota", quota, "count", result.Count)
	c.JSON(http.StatusOK, newCyclesResponse(result))
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
		Version:     Version,
		NetworkSize: h.svc.NetworkSize(),
	})
}

// HandleNotFound answers unknown routes with the list of endpoints.
func (h *Handlers) HandleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, NotFoundResponse{
		Error:              "Endpoint not found",
		AvailableEndpoints: availableEndpoints,
	})
}

// respondError writes an ErrorResponse and counts it.
func (h *Handlers) respondError(c *gin.Context, status int, message, code string) {
	h.metrics.RecordError(c.Request.Context(), code)
	c.JSON(status, ErrorResponse{Error: message, Code: code})
}

// getOrCreateRequestID returns the caller's X-Request-ID or a fresh UUID,
// echoing it on the response.
func getOrCreateRequestID(c *gin.Context) string {
	if id, ok := c.Get(requestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)
	c.Set(requestIDKey, requestID)
	return requestID
}
