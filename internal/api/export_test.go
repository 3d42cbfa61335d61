package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubgraph/clubgraph/internal/api"
	"github.com/clubgraph/clubgraph/internal/models"
)

type staticExport struct {
	export models.ExportFormat
}

func (s staticExport) Export() models.ExportFormat { return s.export }

func newExportRouter(export models.ExportFormat, archive api.SnapshotArchive) *gin.Engine {
	h := api.NewExportHandler(staticExport{export: export}, archive, testLogger())
	r := gin.New()
	r.GET("/export", h.Export)
	r.POST("/archive", h.Archive)
	r.GET("/archive/latest", h.LatestSnapshot)

	return r
}

func sampleExport() models.ExportFormat {
	return models.ExportFormat{
		SchemaVersion: models.ExportSchemaVersion,
		ExportedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Stats:         models.ExportStats{ArticleCount: 2, EdgeCount: 1},
		Articles: []models.Article{
			{ID: "a", Title: "first"},
			{ID: "b", Title: "second"},
		},
		Edges: []models.Edge{
			{Source: "a", Target: "b", Weight: 1.0},
		},
	}
}

func TestExport(t *testing.T) {
	r := newExportRouter(sampleExport(), nil)

	w := doRequest(r, http.MethodGet, "/export", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var export models.ExportFormat
	decodeBody(t, w, &export)

	if export.SchemaVersion != models.ExportSchemaVersion {
		t.Errorf("schema version = %d, want %d", export.SchemaVersion, models.ExportSchemaVersion)
	}

	if len(export.Articles) != 2 || len(export.Edges) != 1 {
		t.Errorf("articles = %d edges = %d, want 2 and 1", len(export.Articles), len(export.Edges))
	}
}

func TestArchive_NotConfigured(t *testing.T) {
	r := newExportRouter(sampleExport(), nil)

	if w := doRequest(r, http.MethodPost, "/archive", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("POST /archive status = %d, want 503", w.Code)
	}

	if w := doRequest(r, http.MethodGet, "/archive/latest", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /archive/latest status = %d, want 503", w.Code)
	}
}

func TestArchive_Save(t *testing.T) {
	var saved models.ExportFormat
	archive := &mockArchive{
		saveFn: func(_ context.Context, export models.ExportFormat) (models.SnapshotInfo, error) {
			saved = export

			return models.SnapshotInfo{ID: 7, Articles: 2, Edges: 1}, nil
		},
	}
	r := newExportRouter(sampleExport(), archive)

	w := doRequest(r, http.MethodPost, "/archive", "")

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}

	if len(saved.Articles) != 2 {
		t.Errorf("archived %d articles, want 2", len(saved.Articles))
	}

	var info models.SnapshotInfo
	decodeBody(t, w, &info)

	if info.ID != 7 {
		t.Errorf("snapshot id = %d, want 7", info.ID)
	}
}

func TestArchive_LatestEmpty(t *testing.T) {
	archive := &mockArchive{
		latestFn: func(context.Context) (models.ExportFormat, models.SnapshotInfo, error) {
			return models.ExportFormat{}, models.SnapshotInfo{}, models.ErrSnapshotNotFound
		},
	}
	r := newExportRouter(sampleExport(), archive)

	w := doRequest(r, http.MethodGet, "/archive/latest", "")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestArchive_Latest(t *testing.T) {
	archive := &mockArchive{
		latestFn: func(context.Context) (models.ExportFormat, models.SnapshotInfo, error) {
			return sampleExport(), models.SnapshotInfo{ID: 3, Articles: 2, Edges: 1}, nil
		},
	}
	r := newExportRouter(sampleExport(), archive)

	w := doRequest(r, http.MethodGet, "/archive/latest", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Info     models.SnapshotInfo `json:"info"`
		Snapshot models.ExportFormat `json:"snapshot"`
	}
	decodeBody(t, w, &resp)

	if resp.Info.ID != 3 {
		t.Errorf("snapshot id = %d, want 3", resp.Info.ID)
	}

	if len(resp.Snapshot.Articles) != 2 {
		t.Errorf("snapshot articles = %d, want 2", len(resp.Snapshot.Articles))
	}
}
