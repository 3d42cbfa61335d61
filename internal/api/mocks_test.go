package api_test

import (
	"context"

	"github.com/clubgraph/clubgraph/internal/models"
)

// mockArticleService implements api.ArticleService for testing.
type mockArticleService struct {
	addFn    func(req models.IngestArticleRequest) (*models.IngestResult, error)
	removeFn func(id string) error
	getFn    func(id string) (*models.ArticleContext, error)
}

func (m *mockArticleService) AddArticle(req models.IngestArticleRequest) (*models.IngestResult, error) {
	return m.addFn(req)
}

func (m *mockArticleService) RemoveArticle(id string) error {
	return m.removeFn(id)
}

func (m *mockArticleService) ArticleWithConnections(id string) (*models.ArticleContext, error) {
	return m.getFn(id)
}

// mockGraphService implements api.GraphService for testing.
type mockGraphService struct {
	distanceFn func(fromID, toID string, mode models.DistanceMode) (models.DistanceResult, error)
	relatedFn  func(id string, maxDistance float64, mode models.DistanceMode) (*models.RelatedResult, error)
	scoreFn    func(fromID, toID string) float64
}

func (m *mockGraphService) Distance(fromID, toID string, mode models.DistanceMode) (models.DistanceResult, error) {
	return m.distanceFn(fromID, toID, mode)
}

func (m *mockGraphService) RelatedWithin(id string, maxDistance float64, mode models.DistanceMode) (*models.RelatedResult, error) {
	return m.relatedFn(id, maxDistance, mode)
}

func (m *mockGraphService) RelevanceScore(fromID, toID string) float64 {
	return m.scoreFn(fromID, toID)
}

// mockStatsService implements api.StatsService for testing.
type mockStatsService struct {
	statsFn func() models.GraphStats
}

func (m *mockStatsService) Stats() models.GraphStats {
	return m.statsFn()
}

// mockArchive implements api.SnapshotArchive for testing.
type mockArchive struct {
	saveFn   func(ctx context.Context, export models.ExportFormat) (models.SnapshotInfo, error)
	latestFn func(ctx context.Context) (models.ExportFormat, models.SnapshotInfo, error)
	healthFn func(ctx context.Context) error
}

func (m *mockArchive) Save(ctx context.Context, export models.ExportFormat) (models.SnapshotInfo, error) {
	return m.saveFn(ctx, export)
}

func (m *mockArchive) Latest(ctx context.Context) (models.ExportFormat, models.SnapshotInfo, error) {
	return m.latestFn(ctx)
}

func (m *mockArchive) HealthCheck(ctx context.Context) error {
	if m.healthFn == nil {
		return nil
	}

	return m.healthFn(ctx)
}
