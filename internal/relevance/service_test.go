package relevance_test

import (
	"encoding/json"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/clubgraph/clubgraph/internal/geo"
	"github.com/clubgraph/clubgraph/internal/graph"
	"github.com/clubgraph/clubgraph/internal/models"
	"github.com/clubgraph/clubgraph/internal/relate"
	"github.com/clubgraph/clubgraph/internal/relevance"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

type capturedEvent struct {
	Type string
	Data json.RawMessage
}

type mockPublisher struct {
	mu     sync.Mutex
	events []capturedEvent
}

func (m *mockPublisher) BroadcastEvent(eventType string, data json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, capturedEvent{Type: eventType, Data: data})
}

func (m *mockPublisher) getEvents() []capturedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]capturedEvent(nil), m.events...)
}

func newTestService(events relevance.EventPublisher) *relevance.Service {
	store := graph.NewStore(relate.NewDetector(geo.Ireland()))
	return relevance.NewService(store, events, testLogger())
}

func ingest(t *testing.T, svc *relevance.Service, id, county string, clubs ...string) *models.IngestResult {
	t.Helper()

	md := models.ArticleMetadata{PrimaryCounty: county}
	for _, c := range clubs {
		md.Clubs = append(md.Clubs, models.Club{Name: c})
	}

	result, err := svc.AddArticle(models.IngestArticleRequest{ID: id, Title: "Article " + id, Metadata: md})
	if err != nil {
		t.Fatalf("AddArticle(%s): %v", id, err)
	}

	return result
}

// chainService builds a-b weight 1.0, b-c weight 0.4, no a-c edge.
func chainService(t *testing.T, events relevance.EventPublisher) *relevance.Service {
	t.Helper()
	svc := newTestService(events)

	ingest(t, svc, "a", "Dublin", "Na Fianna")
	ingest(t, svc, "b", "Meath", "Na Fianna")
	ingest(t, svc, "c", "Westmeath")

	return svc
}

func TestAddArticle_ReturnsConnections(t *testing.T) {
	svc := newTestService(nil)

	ingest(t, svc, "a", "Dublin", "Na Fianna")
	result := ingest(t, svc, "b", "Meath", "Na Fianna")

	if len(result.Connections) != 1 || result.Connections[0].Article.ID != "a" {
		t.Errorf("connections = %v, want [a]", result.Connections)
	}
}

func TestAddArticle_InvalidRequest(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.AddArticle(models.IngestArticleRequest{ID: "a", Title: ""})
	if !errors.Is(err, models.ErrMissingTitle) {
		t.Errorf("AddArticle = %v, want ErrMissingTitle", err)
	}
}

func TestAddArticle_Duplicate(t *testing.T) {
	svc := newTestService(nil)
	ingest(t, svc, "a", "Dublin")

	_, err := svc.AddArticle(models.IngestArticleRequest{
		ID: "a", Title: "again",
		Metadata: models.ArticleMetadata{PrimaryCounty: "Dublin"},
	})
	if !errors.Is(err, models.ErrDuplicateArticle) {
		t.Errorf("AddArticle = %v, want ErrDuplicateArticle", err)
	}
}

func TestAddAndRemove_PublishEvents(t *testing.T) {
	pub := &mockPublisher{}
	svc := newTestService(pub)

	ingest(t, svc, "a", "Dublin")
	if err := svc.RemoveArticle("a"); err != nil {
		t.Fatalf("RemoveArticle: %v", err)
	}

	events := pub.getEvents()
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Type != relevance.EventArticleAdded {
		t.Errorf("events[0] = %q, want %q", events[0].Type, relevance.EventArticleAdded)
	}
	if events[1].Type != relevance.EventArticleRemoved {
		t.Errorf("events[1] = %q, want %q", events[1].Type, relevance.EventArticleRemoved)
	}
}

func TestArticleWithConnections(t *testing.T) {
	svc := chainService(t, nil)

	ctx, err := svc.ArticleWithConnections("b")
	if err != nil {
		t.Fatalf("ArticleWithConnections: %v", err)
	}

	if ctx.Article.ID != "b" {
		t.Errorf("article = %q, want b", ctx.Article.ID)
	}
	if len(ctx.Connections) != 2 {
		t.Errorf("connections = %d, want 2", len(ctx.Connections))
	}
}

func TestArticleWithConnections_NotFound(t *testing.T) {
	svc := newTestService(nil)

	if _, err := svc.ArticleWithConnections("missing"); !errors.Is(err, models.ErrArticleNotFound) {
		t.Errorf("ArticleWithConnections = %v, want ErrArticleNotFound", err)
	}
}

func TestRelatedWithin_CeilingBuckets(t *testing.T) {
	svc := chainService(t, nil)

	result, err := svc.RelatedWithin("a", 4, models.ModeWeighted)
	if err != nil {
		t.Fatalf("RelatedWithin: %v", err)
	}

	// b at weighted distance 1 -> level 1; c at 3.5 -> level 4 (ceiling).
	if len(result.Levels) != 2 {
		t.Fatalf("levels = %v, want 2", result.Levels)
	}
	if result.Levels[0].Level != 1 || result.Levels[0].Articles[0].Article.ID != "b" {
		t.Errorf("level 1 = %+v, want [b]", result.Levels[0])
	}
	if result.Levels[1].Level != 4 || result.Levels[1].Articles[0].Article.ID != "c" {
		t.Errorf("far level = %+v, want c at level 4", result.Levels[1])
	}
}

func TestRelatedWithin_ExcludesBeyondMax(t *testing.T) {
	svc := chainService(t, nil)

	result, err := svc.RelatedWithin("a", 2, models.ModeWeighted)
	if err != nil {
		t.Fatalf("RelatedWithin: %v", err)
	}

	if len(result.Levels) != 1 || len(result.Levels[0].Articles) != 1 {
		t.Fatalf("levels = %v, want only b", result.Levels)
	}
	if result.Levels[0].Articles[0].Article.ID != "b" {
		t.Errorf("included = %q, want b", result.Levels[0].Articles[0].Article.ID)
	}
}

func TestRelatedWithin_NotFound(t *testing.T) {
	svc := newTestService(nil)

	if _, err := svc.RelatedWithin("missing", 2, models.ModeWeighted); !errors.Is(err, models.ErrArticleNotFound) {
		t.Errorf("RelatedWithin = %v, want ErrArticleNotFound", err)
	}
}

func TestRelevanceScore_Chain(t *testing.T) {
	svc := chainService(t, nil)

	score := svc.RelevanceScore("a", "c")
	want := 1 / (1 + 3.5)
	if math.Abs(score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", score, want)
	}
}

func TestRelevanceScore_SelfIsOne(t *testing.T) {
	svc := chainService(t, nil)

	if score := svc.RelevanceScore("a", "a"); score != 1 {
		t.Errorf("score = %v, want 1", score)
	}
}

func TestRelevanceScore_BestEffortZero(t *testing.T) {
	svc := chainService(t, nil)
	ingest(t, svc, "island", "Kerry")

	if score := svc.RelevanceScore("a", "island"); score != 0 {
		t.Errorf("unreachable score = %v, want 0", score)
	}
	if score := svc.RelevanceScore("a", "missing"); score != 0 {
		t.Errorf("absent score = %v, want 0", score)
	}
	if score := svc.RelevanceScore("missing", "also-missing"); score != 0 {
		t.Errorf("absent score = %v, want 0", score)
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	svc := chainService(t, nil)
	export := svc.Export()

	restored := newTestService(nil)
	if err := restored.Restore(export); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	again := restored.Export()
	if len(again.Articles) != len(export.Articles) {
		t.Errorf("articles = %d, want %d", len(again.Articles), len(export.Articles))
	}
	if len(again.Edges) != len(export.Edges) {
		t.Errorf("edges = %d, want %d", len(again.Edges), len(export.Edges))
	}

	result, err := restored.Distance("a", "c", models.ModeWeighted)
	if err != nil {
		t.Fatalf("Distance after restore: %v", err)
	}
	if math.Abs(result.Distance-3.5) > 1e-9 {
		t.Errorf("distance after restore = %v, want 3.5", result.Distance)
	}
}
