package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/clubgraph/clubgraph/internal/middleware"
	"github.com/clubgraph/clubgraph/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Articles    ArticleService
	Graph       GraphService
	Stats       StatsService
	Export      ExportService
	Archive     SnapshotArchive // nil disables the archive endpoints
	Hub         *ws.Hub
	CORSOrigins []string
	Version     string
}

// maxBodySize caps request bodies; article metadata is small.
const maxBodySize = 1 << 20 // 1 MB

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID())
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.Prometheus())

	// Metrics endpoint (outside the versioned API group, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Stats, deps.Archive, deps.Hub, log, deps.Version)
	articles := NewArticleHandler(deps.Articles, log)
	graph := NewGraphHandler(deps.Graph, log)
	stats := NewStatsHandler(deps.Stats, log)
	export := NewExportHandler(deps.Export, deps.Archive, log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Articles.
	api.POST("/articles", articles.Create)
	api.GET("/articles/:id", articles.Get)
	api.DELETE("/articles/:id", articles.Delete)

	// Distance and relevance queries.
	api.GET("/graph/distance/:from/:to", graph.Distance)
	api.GET("/graph/related/:id", graph.Related)
	api.GET("/graph/score/:from/:to", graph.Score)

	// Stats and export.
	api.GET("/stats", stats.GetStats)
	api.GET("/export", export.Export)

	// Snapshot archive.
	api.POST("/archive", export.Archive)
	api.GET("/archive/latest", export.LatestSnapshot)

	// WebSocket event feed.
	if deps.Hub != nil {
		api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
	}
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
