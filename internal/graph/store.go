// Package graph holds the in-memory article relevance graph: an undirected
// simple graph whose nodes are articles and whose edges are aggregated
// detected relationships. It also hosts the shortest-path engine.
package graph

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/clubgraph/clubgraph/internal/models"
	"github.com/clubgraph/clubgraph/internal/relate"
)

// Store is the single shared mutable graph structure. A RWMutex enforces the
// single-writer discipline: insert and remove serialize against each other
// and against readers, so every query sees a consistent snapshot.
type Store struct {
	mu       sync.RWMutex
	detector *relate.Detector

	articles map[string]models.Article
	order    []string       // insertion order, stable within a process run
	seq      map[string]int // insertion sequence per article
	nextSeq  int

	// adj[a][b] and adj[b][a] point at the same Edge; the graph is simple,
	// so there is never more than one edge per pair.
	adj map[string]map[string]*models.Edge
}

// NewStore creates an empty Store using the given relationship detector.
func NewStore(detector *relate.Detector) *Store {
	return &Store{
		detector: detector,
		articles: make(map[string]models.Article),
		seq:      make(map[string]int),
		adj:      make(map[string]map[string]*models.Edge),
	}
}

// Insert stores an article and installs an edge to every prior article with
// at least one detected relationship. All relationships are computed before
// any mutation, so an insert is atomic: either the node and all its edges
// appear, or nothing does. Returns the distance-1 connections created.
func (s *Store) Insert(article models.Article) ([]models.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.articles[article.ID]; exists {
		return nil, models.ErrDuplicateArticle
	}

	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}

	// Detection phase: compare against every existing article in insertion
	// order. No mutation happens until all pairs are evaluated.
	var edges []*models.Edge

	for _, otherID := range s.order {
		other := s.articles[otherID]

		rels := s.detector.Detect(article.Metadata, other.Metadata)
		if len(rels) == 0 {
			continue
		}

		e := models.NewEdge(article.ID, other.ID, rels)
		edges = append(edges, &e)
	}

	// Apply phase.
	s.articles[article.ID] = article
	s.order = append(s.order, article.ID)
	s.seq[article.ID] = s.nextSeq
	s.nextSeq++
	s.adj[article.ID] = make(map[string]*models.Edge)

	connections := make([]models.Connection, 0, len(edges))

	for _, e := range edges {
		other := e.Other(article.ID)
		s.adj[article.ID][other] = e
		s.adj[other][article.ID] = e
		connections = append(connections, models.Connection{Article: s.articles[other], Edge: *e})
	}

	return connections, nil
}

// Remove deletes an article and every incident edge.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.articles[id]; !exists {
		return models.ErrArticleNotFound
	}

	for other := range s.adj[id] {
		delete(s.adj[other], id)
	}

	delete(s.adj, id)
	delete(s.articles, id)
	delete(s.seq, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// Get returns a stored article by ID.
func (s *Store) Get(id string) (models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, exists := s.articles[id]
	if !exists {
		return models.Article{}, models.ErrArticleNotFound
	}

	return article, nil
}

// Neighbors returns every article directly connected to id, in insertion
// order, with the connecting edges. An isolated article yields an empty list.
func (s *Store) Neighbors(id string) ([]models.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.articles[id]; !exists {
		return nil, models.ErrArticleNotFound
	}

	return s.neighborsLocked(id), nil
}

// neighborsLocked assumes at least a read lock is held and that id exists.
func (s *Store) neighborsLocked(id string) []models.Connection {
	connections := make([]models.Connection, 0, len(s.adj[id]))
	for other, e := range s.adj[id] {
		connections = append(connections, models.Connection{Article: s.articles[other], Edge: *e})
	}

	sort.Slice(connections, func(i, j int) bool {
		return s.seq[connections[i].Article.ID] < s.seq[connections[j].Article.ID]
	})

	return connections
}

// AllArticles returns every stored article in insertion order.
func (s *Store) AllArticles() []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Article, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.articles[id])
	}

	return out
}

// Stats returns aggregate graph statistics. Ties for the most connected
// article break to the first-inserted.
func (s *Store) Stats() models.GraphStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.GraphStats{
		Articles: len(s.order),
		Edges:    s.edgeCountLocked(),
		Counties: []string{},
		Leagues:  []string{},
	}

	counties := make(map[string]string) // normalized -> first-seen casing
	leagues := make(map[string]string)

	best := -1

	for _, id := range s.order {
		article := s.articles[id]

		if c := article.Metadata.PrimaryCounty; c != "" {
			key := strings.ToLower(strings.TrimSpace(c))
			if _, seen := counties[key]; !seen {
				counties[key] = strings.TrimSpace(c)
			}
		}

		for _, l := range article.Metadata.Leagues {
			key := strings.ToLower(strings.TrimSpace(l))
			if key == "" {
				continue
			}
			if _, seen := leagues[key]; !seen {
				leagues[key] = strings.TrimSpace(l)
			}
		}

		if n := len(s.adj[id]); n > best {
			best = n
			stats.MostConnected = &models.MostConnected{ID: id, Title: article.Title, Connections: n}
		}
	}

	if stats.Articles > 0 {
		stats.AvgConnections = 2 * float64(stats.Edges) / float64(stats.Articles)
	}

	for _, c := range counties {
		stats.Counties = append(stats.Counties, c)
	}

	for _, l := range leagues {
		stats.Leagues = append(stats.Leagues, l)
	}

	sort.Strings(stats.Counties)
	sort.Strings(stats.Leagues)

	return stats
}

// edgeCountLocked counts distinct edges; each pair appears in adj twice.
func (s *Store) edgeCountLocked() int {
	total := 0
	for _, neighbors := range s.adj {
		total += len(neighbors)
	}

	return total / 2
}

// Export returns a loss-free snapshot of the graph: every article in
// insertion order, every edge once with its full relationship list.
func (s *Store) Export() models.ExportFormat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	export := models.ExportFormat{
		SchemaVersion: models.ExportSchemaVersion,
		ExportedAt:    time.Now().UTC(),
		Articles:      make([]models.Article, 0, len(s.order)),
		Edges:         []models.Edge{},
	}

	for _, id := range s.order {
		export.Articles = append(export.Articles, s.articles[id])

		// Emit each edge exactly once, when visiting its earlier endpoint.
		conns := s.neighborsLocked(id)
		for _, c := range conns {
			if s.seq[c.Article.ID] > s.seq[id] {
				export.Edges = append(export.Edges, c.Edge)
			}
		}
	}

	export.Stats = models.ExportStats{
		ArticleCount: len(export.Articles),
		EdgeCount:    len(export.Edges),
	}

	return export
}
