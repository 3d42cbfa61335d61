package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/clubgraph/clubgraph/internal/models"
)

// defaultRelatedDistance bounds GET /graph/related when no max is given.
const defaultRelatedDistance = 3

// GraphHandler serves distance and relevance query endpoints.
type GraphHandler struct {
	svc GraphService
	log *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given service and logger.
func NewGraphHandler(svc GraphService, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{svc: svc, log: log}
}

// Distance handles GET /api/v1/graph/distance/:from/:to.
func (h *GraphHandler) Distance(c *gin.Context) {
	from := c.Param("from")
	to := c.Param("to")

	if err := validatePathID(from); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid from: "+err.Error())

		return
	}

	if err := validatePathID(to); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid to: "+err.Error())

		return
	}

	mode, ok := parseMode(c)
	if !ok {
		return
	}

	result, err := h.svc.Distance(from, to, mode)
	if err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "article not found")

			return
		}

		h.log.WithError(err).Error("computing distance")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}

// Related handles GET /api/v1/graph/related/:id.
func (h *GraphHandler) Related(c *gin.Context) {
	articleID := c.Param("id")
	if err := validatePathID(articleID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	mode, ok := parseMode(c)
	if !ok {
		return
	}

	maxDistance := parseMaxDistance(c.Query("max"), defaultRelatedDistance)

	result, err := h.svc.RelatedWithin(articleID, maxDistance, mode)
	if err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "article not found")

			return
		}

		h.log.WithError(err).Error("finding related articles")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}

// Score handles GET /api/v1/graph/score/:from/:to. Scoring is best-effort:
// absent or unreachable articles score 0 rather than erroring.
func (h *GraphHandler) Score(c *gin.Context) {
	from := c.Param("from")
	to := c.Param("to")

	if err := validatePathID(from); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid from: "+err.Error())

		return
	}

	if err := validatePathID(to); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid to: "+err.Error())

		return
	}

	score := h.svc.RelevanceScore(from, to)

	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "score": score})
}
