package graph_test

import (
	"errors"
	"testing"

	"github.com/clubgraph/clubgraph/internal/geo"
	"github.com/clubgraph/clubgraph/internal/graph"
	"github.com/clubgraph/clubgraph/internal/models"
	"github.com/clubgraph/clubgraph/internal/relate"
)

func newTestStore() *graph.Store {
	return graph.NewStore(relate.NewDetector(geo.Ireland()))
}

// clubArticle builds an article whose only signal is its club list.
func clubArticle(id string, clubs ...string) models.Article {
	md := models.ArticleMetadata{PrimaryCounty: "Dublin"}
	for _, c := range clubs {
		md.Clubs = append(md.Clubs, models.Club{Name: c})
	}

	return models.Article{ID: id, Title: "Article " + id, Metadata: md}
}

func mustInsert(t *testing.T, s *graph.Store, a models.Article) []models.Connection {
	t.Helper()

	conns, err := s.Insert(a)
	if err != nil {
		t.Fatalf("Insert(%s): %v", a.ID, err)
	}

	return conns
}

func TestInsert_DuplicateID(t *testing.T) {
	s := newTestStore()
	mustInsert(t, s, clubArticle("a", "Na Fianna"))

	if _, err := s.Insert(clubArticle("a", "Na Fianna")); !errors.Is(err, models.ErrDuplicateArticle) {
		t.Errorf("Insert duplicate = %v, want ErrDuplicateArticle", err)
	}
}

func TestInsert_CreatesEdgesToRelatedArticles(t *testing.T) {
	s := newTestStore()
	mustInsert(t, s, clubArticle("a", "Na Fianna"))
	mustInsert(t, s, clubArticle("b", "Kilmacud Crokes"))

	conns := mustInsert(t, s, clubArticle("c", "Na Fianna"))

	if len(conns) != 1 {
		t.Fatalf("connections = %d, want 1", len(conns))
	}
	if conns[0].Article.ID != "a" {
		t.Errorf("connected to %q, want a", conns[0].Article.ID)
	}
	if conns[0].Edge.Weight != models.WeightSameClub {
		t.Errorf("edge weight = %v, want %v", conns[0].Edge.Weight, models.WeightSameClub)
	}
}

func TestInsert_CombinedSignalsOneEdge(t *testing.T) {
	s := newTestStore()

	md := models.ArticleMetadata{
		Clubs:         []models.Club{{Name: "Na Fianna"}},
		PrimaryCounty: "Dublin",
		Leagues:       []string{"Dublin SFC"},
	}
	mustInsert(t, s, models.Article{ID: "a", Title: "A", Metadata: md})
	conns := mustInsert(t, s, models.Article{ID: "b", Title: "B", Metadata: md})

	if len(conns) != 1 {
		t.Fatalf("connections = %d, want single aggregated edge", len(conns))
	}

	edge := conns[0].Edge
	if len(edge.Relationships) != 2 {
		t.Errorf("relationships = %d, want 2", len(edge.Relationships))
	}
	if edge.Weight != 1.0 {
		t.Errorf("edge weight = %v, want max(1.0, 0.5) = 1.0", edge.Weight)
	}
}

func TestInsert_UnrelatedArticlesNoEdge(t *testing.T) {
	s := newTestStore()

	mustInsert(t, s, models.Article{ID: "a", Title: "A", Metadata: models.ArticleMetadata{
		Clubs: []models.Club{{Name: "Na Fianna"}}, PrimaryCounty: "Dublin", Leagues: []string{"Dublin SFC"},
	}})
	conns := mustInsert(t, s, models.Article{ID: "b", Title: "B", Metadata: models.ArticleMetadata{
		Clubs: []models.Club{{Name: "Nemo Rangers"}}, PrimaryCounty: "Cork", Leagues: []string{"Cork SFC"},
	}})

	if len(conns) != 0 {
		t.Errorf("connections = %v, want none", conns)
	}

	stats := s.Stats()
	if stats.Edges != 0 {
		t.Errorf("edges = %d, want 0", stats.Edges)
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore()
	mustInsert(t, s, clubArticle("a", "Na Fianna"))
	mustInsert(t, s, clubArticle("b", "Na Fianna"))

	if err := s.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if _, err := s.Get("a"); !errors.Is(err, models.ErrArticleNotFound) {
		t.Errorf("Get removed = %v, want ErrArticleNotFound", err)
	}

	// Incident edges are gone from former neighbors.
	conns, err := s.Neighbors("b")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(conns) != 0 {
		t.Errorf("neighbors of b = %v, want none after removal", conns)
	}

	stats := s.Stats()
	if stats.Articles != 1 || stats.Edges != 0 {
		t.Errorf("stats = %d articles %d edges, want 1 and 0", stats.Articles, stats.Edges)
	}
}

func TestRemove_NotFound(t *testing.T) {
	s := newTestStore()

	if err := s.Remove("missing"); !errors.Is(err, models.ErrArticleNotFound) {
		t.Errorf("Remove = %v, want ErrArticleNotFound", err)
	}
}

func TestNeighbors_NotFound(t *testing.T) {
	s := newTestStore()

	if _, err := s.Neighbors("missing"); !errors.Is(err, models.ErrArticleNotFound) {
		t.Errorf("Neighbors = %v, want ErrArticleNotFound", err)
	}
}

func TestNeighbors_Isolated(t *testing.T) {
	s := newTestStore()
	mustInsert(t, s, clubArticle("a", "Na Fianna"))

	conns, err := s.Neighbors("a")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(conns) != 0 {
		t.Errorf("neighbors = %v, want empty for isolated article", conns)
	}
}

func TestAllArticles_InsertionOrder(t *testing.T) {
	s := newTestStore()
	for _, id := range []string{"c", "a", "b"} {
		mustInsert(t, s, clubArticle(id))
	}

	all := s.AllArticles()
	want := []string{"c", "a", "b"}
	if len(all) != len(want) {
		t.Fatalf("articles = %d, want %d", len(all), len(want))
	}
	for i, a := range all {
		if a.ID != want[i] {
			t.Errorf("articles[%d] = %q, want %q", i, a.ID, want[i])
		}
	}
}

func TestStats(t *testing.T) {
	s := newTestStore()

	mustInsert(t, s, models.Article{ID: "a", Title: "Hub", Metadata: models.ArticleMetadata{
		Clubs: []models.Club{{Name: "Na Fianna"}, {Name: "Crokes"}}, PrimaryCounty: "Dublin", Leagues: []string{"Dublin SFC"},
	}})
	mustInsert(t, s, models.Article{ID: "b", Title: "B", Metadata: models.ArticleMetadata{
		Clubs: []models.Club{{Name: "Na Fianna"}}, PrimaryCounty: "Meath", Leagues: []string{"Leinster SFC"},
	}})
	mustInsert(t, s, models.Article{ID: "c", Title: "C", Metadata: models.ArticleMetadata{
		Clubs: []models.Club{{Name: "Crokes"}}, PrimaryCounty: "Dublin",
	}})

	stats := s.Stats()

	if stats.Articles != 3 {
		t.Errorf("articles = %d, want 3", stats.Articles)
	}
	// a-b (same club + proximity), a-c (same club), b-c (proximity Meath/Dublin).
	if stats.Edges != 3 {
		t.Errorf("edges = %d, want 3", stats.Edges)
	}

	if stats.MostConnected == nil || stats.MostConnected.ID != "a" {
		t.Errorf("most connected = %+v, want a", stats.MostConnected)
	}

	if len(stats.Counties) != 2 {
		t.Errorf("counties = %v, want 2 distinct", stats.Counties)
	}
	if len(stats.Leagues) != 2 {
		t.Errorf("leagues = %v, want 2 distinct", stats.Leagues)
	}
}

func TestStats_Empty(t *testing.T) {
	s := newTestStore()
	stats := s.Stats()

	if stats.Articles != 0 || stats.Edges != 0 || stats.AvgConnections != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}
	if stats.MostConnected != nil {
		t.Errorf("most connected = %+v, want nil on empty graph", stats.MostConnected)
	}
}

func TestExport_FaithfulSnapshot(t *testing.T) {
	s := newTestStore()
	mustInsert(t, s, clubArticle("a", "Na Fianna"))
	mustInsert(t, s, clubArticle("b", "Na Fianna"))
	mustInsert(t, s, clubArticle("c"))

	export := s.Export()

	if export.SchemaVersion != models.ExportSchemaVersion {
		t.Errorf("schema version = %d, want %d", export.SchemaVersion, models.ExportSchemaVersion)
	}
	if export.Stats.ArticleCount != 3 || export.Stats.EdgeCount != 1 {
		t.Errorf("stats = %+v, want 3 articles 1 edge", export.Stats)
	}
	if len(export.Articles) != 3 || len(export.Edges) != 1 {
		t.Fatalf("export = %d articles %d edges, want 3 and 1", len(export.Articles), len(export.Edges))
	}

	edge := export.Edges[0]
	if len(edge.Relationships) != 1 || edge.Relationships[0].Type != models.RelationSameClub {
		t.Errorf("edge relationships = %v, want one SAME_CLUB", edge.Relationships)
	}
	if edge.Weight != models.WeightSameClub {
		t.Errorf("edge weight = %v, want %v", edge.Weight, models.WeightSameClub)
	}
}
