// Command clubgraph runs the article relevance graph server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/clubgraph/clubgraph/internal/api"
	"github.com/clubgraph/clubgraph/internal/archive"
	"github.com/clubgraph/clubgraph/internal/archive/migrations"
	"github.com/clubgraph/clubgraph/internal/config"
	"github.com/clubgraph/clubgraph/internal/dbpool"
	"github.com/clubgraph/clubgraph/internal/geo"
	"github.com/clubgraph/clubgraph/internal/graph"
	"github.com/clubgraph/clubgraph/internal/models"
	"github.com/clubgraph/clubgraph/internal/relate"
	"github.com/clubgraph/clubgraph/internal/relevance"
	"github.com/clubgraph/clubgraph/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "clubgraph: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	counties, err := loadCounties(cfg, log)
	if err != nil {
		return err
	}

	store := graph.NewStore(relate.NewDetector(counties))
	hub := ws.NewHub(log)
	svc := relevance.NewService(store, hub, log)

	var snapshots *archive.Store
	if cfg.ArchiveEnabled() {
		pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value(), cfg.DBMaxConns)
		if err != nil {
			return fmt.Errorf("connecting to archive database: %w", err)
		}
		defer pool.Close()

		if err := archive.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
			return fmt.Errorf("running archive migrations: %w", err)
		}

		snapshots = archive.NewStore(pool, log)

		if err := restoreLatest(ctx, snapshots, svc, log); err != nil {
			return err
		}
	}

	deps := &api.RouterDeps{
		Log:         log,
		Articles:    svc,
		Graph:       svc,
		Stats:       svc,
		Export:      svc,
		Hub:         hub,
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
	}
	if snapshots != nil {
		deps.Archive = snapshots
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(ctx, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)

		return nil
	})

	g.Go(func() error {
		log.WithFields(logrus.Fields{"addr": cfg.Addr(), "version": config.Version}).Info("server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}

		hub.Shutdown()

		// Best-effort final snapshot on the way out.
		if snapshots != nil {
			if _, err := snapshots.Save(shutdownCtx, svc.Export()); err != nil {
				log.WithError(err).Warn("final snapshot failed")
			}
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("server exited")

	return nil
}

// loadCounties builds the adjacency table, preferring an operator-supplied
// file over the built-in Irish county borders.
func loadCounties(cfg *config.Config, log *logrus.Logger) (*geo.Table, error) {
	if cfg.AdjacencyFile == "" {
		return geo.Ireland(), nil
	}

	counties, err := geo.LoadFile(cfg.AdjacencyFile)
	if err != nil {
		return nil, fmt.Errorf("loading adjacency file: %w", err)
	}

	log.WithField("file", cfg.AdjacencyFile).Info("loaded county adjacency table")

	return counties, nil
}

// restoreLatest rebuilds the graph from the newest archived snapshot. An
// empty archive is a normal cold start.
func restoreLatest(ctx context.Context, snapshots *archive.Store, svc *relevance.Service, log *logrus.Logger) error {
	export, info, err := snapshots.Latest(ctx)
	if err != nil {
		if errors.Is(err, models.ErrSnapshotNotFound) {
			log.Info("archive empty, starting with a fresh graph")

			return nil
		}

		return fmt.Errorf("loading latest snapshot: %w", err)
	}

	if err := svc.Restore(export); err != nil {
		return fmt.Errorf("restoring snapshot %d: %w", info.ID, err)
	}

	log.WithFields(logrus.Fields{
		"snapshot_id": info.ID,
		"articles":    info.Articles,
		"created_at":  info.CreatedAt,
	}).Info("graph restored from archive")

	return nil
}
