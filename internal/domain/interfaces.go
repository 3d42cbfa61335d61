// Package domain defines the canonical service interfaces shared across the
// API layer, the client, and the archive. Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import "github.com/clubgraph/clubgraph/internal/models"

// GraphStore is the read/write contract of the in-memory relevance graph.
type GraphStore interface {
	Insert(article models.Article) ([]models.Connection, error)
	Remove(id string) error
	Get(id string) (models.Article, error)
	Neighbors(id string) ([]models.Connection, error)
	AllArticles() []models.Article
	Stats() models.GraphStats
	Export() models.ExportFormat
	Distance(fromID, toID string, mode models.DistanceMode) (models.DistanceResult, error)
	WithinDistance(sourceID string, maxDistance float64, mode models.DistanceMode) ([]models.DistanceGroup, error)
}

// RelevanceService is the external contract of the relevance engine. All
// operations are synchronous and CPU-bound; the only error conditions are
// duplicate inserts and absent IDs. Unreachability is an ordinary result.
type RelevanceService interface {
	AddArticle(req models.IngestArticleRequest) (*models.IngestResult, error)
	RemoveArticle(id string) error
	ArticleWithConnections(id string) (*models.ArticleContext, error)
	RelatedWithin(id string, maxDistance float64, mode models.DistanceMode) (*models.RelatedResult, error)
	Distance(fromID, toID string, mode models.DistanceMode) (models.DistanceResult, error)
	RelevanceScore(fromID, toID string) float64
	Stats() models.GraphStats
	Export() models.ExportFormat
}
