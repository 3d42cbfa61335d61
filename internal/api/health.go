// Package api provides the HTTP surface of the relevance graph.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/clubgraph/clubgraph/internal/ws"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	stats     StatsService
	archive   SnapshotArchive // nil when no archive is configured
	hub       *ws.Hub
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(stats StatsService, archive SnapshotArchive, hub *ws.Hub, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		stats:     stats,
		archive:   archive,
		hub:       hub,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health/liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Articles      int     `json:"articles"`
	Edges         int     `json:"edges"`
	Subscribers   int     `json:"subscribers"`
	Archive       string  `json:"archive"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Liveness handles GET /api/v1/health — returns graph size and uptime info.
func (h *HealthHandler) Liveness(c *gin.Context) {
	stats := h.stats.Stats()

	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Articles:      stats.Articles,
		Edges:         stats.Edges,
		Archive:       "not_configured",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if h.hub != nil {
		resp.Subscribers = h.hub.ClientCount()
	}

	// Best-effort archive ping (non-fatal for liveness).
	if h.archive != nil {
		resp.Archive = "connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.archive.HealthCheck(ctx); err != nil {
			resp.Archive = "disconnected"
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /api/v1/ready — the graph is always ready once the
// process is up; only a configured archive can degrade readiness.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{
		"graph":   "ok",
		"archive": "not_configured",
	}
	status := "ready"
	statusCode := http.StatusOK

	if h.archive != nil {
		checks["archive"] = "ok"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.archive.HealthCheck(ctx); err != nil {
			h.log.WithError(err).Error("readiness: archive health check failed")
			checks["archive"] = "error"
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
		}
	}

	c.JSON(statusCode, readinessResponse{
		Status: status,
		Checks: checks,
	})
}
