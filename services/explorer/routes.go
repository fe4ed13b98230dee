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
	"github.com/AleutianAI/SocialExplorer/services/explorer/telemetry"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RegisterRoutes registers the explorer endpoints on rg.
//
// Endpoints:
//
//	GET  /users - List members
//	GET  /graph - Adjacency, nodes, edges and stats
//	GET  /stats - Network statistics
//	POST /shortest-path - Traced BFS between two members
//	GET  /cycles - Traced DFS cycle search
//	GET  /health - Health check
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	rg.GET("/users", handlers.HandleUsers)
	rg.GET("/graph", handlers.HandleGraph)
	rg.GET("/stats", handlers.HandleStats)
	rg.POST("/shortest-path", handlers.HandleShortestPath)
	rg.GET("/cycles", handlers.HandleCycles)
	rg.GET("/health", handlers.HandleHealth)
}

// RouterConfig configures NewRouter.
type RouterConfig struct {
	// ServiceName names the server spans created by otelgin.
	ServiceName string

	// CORSOrigins lists allowed origins; "*" allows any.
	CORSOrigins []string

	// Metrics records HTTP and error metrics. Nil disables them.
	Metrics *telemetry.Metrics
}

// NewRouter builds the gin engine serving the explorer API.
//
// Description:
//
//	Installs tracing, request IDs, panic recovery, CORS and metrics, then
//	the API routes at the root. /metrics is mounted when the Prometheus
//	exporter is active. Unknown routes get a 404 listing the endpoints.
//
// Inputs:
//
//	svc - The explorer service.
//	cfg - Router configuration.
//
// Outputs:
//
//	*gin.Engine - Ready to serve.
func NewRouter(svc *Service, cfg RouterConfig) *gin.Engine {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "social-explorer"
	}

	router := gin.New()
	router.Use(
		otelgin.Middleware(cfg.ServiceName),
		RequestID(),
		Recovery(),
		CORS(cfg.CORSOrigins),
		telemetry.GinMetrics(cfg.Metrics),
	)

	handlers := NewHandlers(svc).WithMetrics(cfg.Metrics)
	RegisterRoutes(&router.RouterGroup, handlers)

	if h := telemetry.MetricsHandler(); h != nil {
		router.GET("/metrics", gin.WrapH(h))
	}

	router.NoRoute(handlers.HandleNotFound)
	return router
}
