package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/clubgraph/clubgraph/internal/metrics"
	"github.com/clubgraph/clubgraph/internal/models"
)

// ExportHandler serves the graph snapshot export endpoint and, when an
// archive is configured, the snapshot archive endpoints.
type ExportHandler struct {
	svc     ExportService
	archive SnapshotArchive // nil when no archive is configured
	log     *logrus.Logger
}

// NewExportHandler creates an ExportHandler. archive may be nil.
func NewExportHandler(svc ExportService, archive SnapshotArchive, log *logrus.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, archive: archive, log: log}
}

// Export handles GET /api/v1/export — returns the full graph snapshot.
func (h *ExportHandler) Export(c *gin.Context) {
	export := h.svc.Export()

	h.log.WithFields(logrus.Fields{
		"action":   "graph.export",
		"articles": export.Stats.ArticleCount,
		"edges":    export.Stats.EdgeCount,
	}).Info("audit")

	c.JSON(http.StatusOK, export)
}

// Archive handles POST /api/v1/archive — persists the current snapshot.
func (h *ExportHandler) Archive(c *gin.Context) {
	if h.archive == nil {
		respondError(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "snapshot archive is not configured")

		return
	}

	info, err := h.archive.Save(c.Request.Context(), h.svc.Export())
	if err != nil {
		h.log.WithError(err).Error("archiving snapshot")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.SnapshotsArchived.Inc()
	h.log.WithFields(logrus.Fields{
		"action":      "archive.save",
		"snapshot_id": info.ID,
		"articles":    info.Articles,
	}).Info("audit")

	c.JSON(http.StatusCreated, info)
}

// LatestSnapshot handles GET /api/v1/archive/latest — returns the most
// recently archived snapshot.
func (h *ExportHandler) LatestSnapshot(c *gin.Context) {
	if h.archive == nil {
		respondError(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "snapshot archive is not configured")

		return
	}

	export, info, err := h.archive.Latest(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrSnapshotNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "no snapshots archived yet")

			return
		}

		h.log.WithError(err).Error("loading latest snapshot")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"info": info, "snapshot": export})
}
