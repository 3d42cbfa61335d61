// Package relevance composes the graph store and distance engine into the
// external contract: ingest, connections, related-within-distance, distance,
// relevance scoring, statistics, and export.
package relevance

import (
	"encoding/json"
	"errors"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/clubgraph/clubgraph/internal/domain"
	"github.com/clubgraph/clubgraph/internal/models"
)

// Compile-time check: *Service must satisfy domain.RelevanceService.
var _ domain.RelevanceService = (*Service)(nil)

// Event types broadcast on graph mutations.
const (
	EventArticleAdded   = "article.added"
	EventArticleRemoved = "article.removed"
)

// EventPublisher receives graph mutation events for fan-out to subscribers.
type EventPublisher interface {
	BroadcastEvent(eventType string, data json.RawMessage)
}

// Service wraps the graph store with validation, structured logging, and
// mutation events.
type Service struct {
	store  domain.GraphStore
	events EventPublisher // optional
	log    *logrus.Logger
	flight singleflight.Group
}

// NewService creates a Service. events may be nil when no subscriber fan-out
// is wanted (tests, CLI embedding).
func NewService(store domain.GraphStore, events EventPublisher, log *logrus.Logger) *Service {
	return &Service{store: store, events: events, log: log}
}

// AddArticle validates and inserts an article, returning it together with
// everything it connected to at distance 1.
func (s *Service) AddArticle(req models.IngestArticleRequest) (*models.IngestResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	article := models.Article{ID: req.ID, Title: req.Title, Metadata: req.Metadata}

	connections, err := s.store.Insert(article)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.Get(article.ID)
	if err != nil {
		return nil, err
	}

	result := &models.IngestResult{Article: stored, Connections: connections}

	s.log.WithFields(logrus.Fields{
		"article_id":  stored.ID,
		"county":      stored.Metadata.PrimaryCounty,
		"connections": len(connections),
	}).Debug("relevance.add_article")

	s.publish(EventArticleAdded, result)

	return result, nil
}

// RemoveArticle deletes an article and every incident edge.
func (s *Service) RemoveArticle(id string) error {
	if err := s.store.Remove(id); err != nil {
		return err
	}

	s.log.WithField("article_id", id).Debug("relevance.remove_article")
	s.publish(EventArticleRemoved, map[string]string{"id": id})

	return nil
}

// ArticleWithConnections returns an article plus its direct neighbor list
// with relationship evidence.
func (s *Service) ArticleWithConnections(id string) (*models.ArticleContext, error) {
	article, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	connections, err := s.store.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return &models.ArticleContext{Article: article, Connections: connections}, nil
}

// RelatedWithin returns every article within maxDistance of id, bucketed by
// integer distance level for presentation. Fractional weighted distances
// bucket under their ceiling, so a 2.5-cost article appears at level 3; the
// minimum level is 1.
func (s *Service) RelatedWithin(id string, maxDistance float64, mode models.DistanceMode) (*models.RelatedResult, error) {
	article, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	groups, err := s.store.WithinDistance(id, maxDistance, mode)
	if err != nil {
		return nil, err
	}

	byLevel := make(map[int][]models.Connection)

	for _, g := range groups {
		level := int(math.Ceil(g.Distance))
		if level < 1 {
			level = 1
		}

		byLevel[level] = append(byLevel[level], g.Articles...)
	}

	levels := make([]models.RelatedLevel, 0, len(byLevel))
	for level, articles := range byLevel {
		levels = append(levels, models.RelatedLevel{Level: level, Articles: articles})
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].Level < levels[j].Level })

	return &models.RelatedResult{Article: article, Mode: mode, Levels: levels}, nil
}

// Distance computes the shortest path between two articles in the given mode.
// Concurrent identical queries collapse into a single computation; path search
// over a large graph is the most expensive read the store serves.
func (s *Service) Distance(fromID, toID string, mode models.DistanceMode) (models.DistanceResult, error) {
	s.log.WithFields(logrus.Fields{
		"from": fromID,
		"to":   toID,
		"mode": mode,
	}).Debug("relevance.distance")

	key := fromID + "\x00" + toID + "\x00" + string(mode)

	v, err, _ := s.flight.Do(key, func() (any, error) {
		return s.store.Distance(fromID, toID, mode)
	})
	if err != nil {
		return models.DistanceResult{}, err
	}

	return v.(models.DistanceResult), nil
}

// RelevanceScore returns 1/(1+weighted distance), a bounded (0,1] closeness
// measure. It is best-effort: absent IDs and unreachable pairs score 0 and
// never produce an error.
func (s *Service) RelevanceScore(fromID, toID string) float64 {
	result, err := s.store.Distance(fromID, toID, models.ModeWeighted)
	if err != nil {
		if !errors.Is(err, models.ErrArticleNotFound) {
			s.log.WithError(err).Warn("relevance score lookup failed")
		}

		return 0
	}

	if !result.Reachable() {
		return 0
	}

	return 1 / (1 + result.Distance)
}

// Stats returns aggregate graph statistics.
func (s *Service) Stats() models.GraphStats {
	return s.store.Stats()
}

// Export returns the canonical serializable snapshot of the graph.
func (s *Service) Export() models.ExportFormat {
	return s.store.Export()
}

// Restore rebuilds the graph from an exported snapshot by re-ingesting every
// article in order. Edges are recomputed by detection, which reproduces the
// snapshot exactly because the edge set is a pure function of the metadata.
func (s *Service) Restore(export models.ExportFormat) error {
	for _, article := range export.Articles {
		if _, err := s.store.Insert(article); err != nil {
			return err
		}
	}

	s.log.WithFields(logrus.Fields{
		"articles": len(export.Articles),
		"edges":    len(export.Edges),
	}).Info("graph restored from snapshot")

	return nil
}

// publish marshals and fans out a mutation event. Failures only log; the
// graph mutation has already committed.
func (s *Service) publish(eventType string, payload any) {
	if s.events == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.log.WithError(err).Error("marshalling graph event")

		return
	}

	s.events.BroadcastEvent(eventType, data)
}
