package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/clubgraph/clubgraph/internal/metrics"
)

// StatsHandler serves the graph statistics endpoint.
type StatsHandler struct {
	svc StatsService
	log *logrus.Logger
}

// NewStatsHandler creates a StatsHandler with the given service and logger.
func NewStatsHandler(svc StatsService, log *logrus.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: log}
}

// GetStats handles GET /api/v1/stats — returns aggregate graph statistics.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats := h.svc.Stats()

	// Update Prometheus gauges with fresh counts.
	metrics.ArticleCount.Set(float64(stats.Articles))
	metrics.EdgeCount.Set(float64(stats.Edges))

	c.JSON(http.StatusOK, stats)
}
