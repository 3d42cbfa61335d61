package api

import (
	"context"

	"github.com/clubgraph/clubgraph/internal/models"
)

// ArticleService defines article lifecycle operations used by ArticleHandler.
type ArticleService interface {
	AddArticle(req models.IngestArticleRequest) (*models.IngestResult, error)
	RemoveArticle(id string) error
	ArticleWithConnections(id string) (*models.ArticleContext, error)
}

// GraphService defines distance and relevance queries used by GraphHandler.
type GraphService interface {
	Distance(fromID, toID string, mode models.DistanceMode) (models.DistanceResult, error)
	RelatedWithin(id string, maxDistance float64, mode models.DistanceMode) (*models.RelatedResult, error)
	RelevanceScore(fromID, toID string) float64
}

// StatsService defines the aggregate statistics query used by StatsHandler.
type StatsService interface {
	Stats() models.GraphStats
}

// ExportService defines the snapshot export used by ExportHandler.
type ExportService interface {
	Export() models.ExportFormat
}

// SnapshotArchive defines the optional durable snapshot store used by
// ArchiveHandler. Latest returns models.ErrSnapshotNotFound when the archive
// is empty.
type SnapshotArchive interface {
	Save(ctx context.Context, export models.ExportFormat) (models.SnapshotInfo, error)
	Latest(ctx context.Context) (models.ExportFormat, models.SnapshotInfo, error)
	HealthCheck(ctx context.Context) error
}
