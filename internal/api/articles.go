package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/clubgraph/clubgraph/internal/models"
)

// ArticleHandler serves article ingest and lookup endpoints.
type ArticleHandler struct {
	svc ArticleService
	log *logrus.Logger
}

// NewArticleHandler creates an ArticleHandler with the given service and logger.
func NewArticleHandler(svc ArticleService, log *logrus.Logger) *ArticleHandler {
	return &ArticleHandler{svc: svc, log: log}
}

// Create handles POST /api/v1/articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req models.IngestArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	result, err := h.svc.AddArticle(req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateArticle) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "article with this ID already exists")

			return
		}

		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":      "article.create",
		"article_id":  result.Article.ID,
		"connections": len(result.Connections),
	}).Info("audit")

	c.JSON(http.StatusCreated, result)
}

// Get handles GET /api/v1/articles/:id.
func (h *ArticleHandler) Get(c *gin.Context) {
	articleID := c.Param("id")
	if err := validatePathID(articleID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	ctx, err := h.svc.ArticleWithConnections(articleID)
	if err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "article not found")

			return
		}

		h.log.WithError(err).Error("getting article")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, ctx)
}

// Delete handles DELETE /api/v1/articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	articleID := c.Param("id")
	if err := validatePathID(articleID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.svc.RemoveArticle(articleID); err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "article not found")

			return
		}

		h.log.WithError(err).Error("deleting article")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "article.delete", "article_id": articleID}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
