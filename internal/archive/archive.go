// Package archive persists graph snapshots to PostgreSQL. The graph itself is
// always rebuilt in memory; the archive only shortens cold starts and guards
// against losing ingested articles across restarts.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/clubgraph/clubgraph/internal/dbpool"
	"github.com/clubgraph/clubgraph/internal/models"
)

// Store reads and writes graph snapshots in the graph_snapshots table.
type Store struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

// NewStore creates a Store backed by the given pool.
func NewStore(pool *dbpool.Pool, log *logrus.Logger) *Store {
	return &Store{pool: pool, log: log}
}

// Save archives an export payload and returns the stored snapshot's metadata.
func (s *Store) Save(ctx context.Context, export models.ExportFormat) (models.SnapshotInfo, error) {
	payload, err := json.Marshal(export)
	if err != nil {
		return models.SnapshotInfo{}, fmt.Errorf("marshalling snapshot payload: %w", err)
	}

	info := models.SnapshotInfo{
		Articles: export.Stats.ArticleCount,
		Edges:    export.Stats.EdgeCount,
	}

	err = s.pool.QueryRow(ctx,
		`INSERT INTO graph_snapshots (article_count, edge_count, payload)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		info.Articles, info.Edges, payload,
	).Scan(&info.ID, &info.CreatedAt)
	if err != nil {
		return models.SnapshotInfo{}, fmt.Errorf("inserting snapshot: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"snapshot_id": info.ID,
		"articles":    info.Articles,
		"edges":       info.Edges,
	}).Info("snapshot archived")

	return info, nil
}

// Latest returns the most recently archived snapshot. It returns
// models.ErrSnapshotNotFound when the archive is empty.
func (s *Store) Latest(ctx context.Context) (models.ExportFormat, models.SnapshotInfo, error) {
	var (
		info    models.SnapshotInfo
		payload []byte
	)

	err := s.pool.QueryRow(ctx,
		`SELECT id, created_at, article_count, edge_count, payload
		 FROM graph_snapshots
		 ORDER BY id DESC
		 LIMIT 1`,
	).Scan(&info.ID, &info.CreatedAt, &info.Articles, &info.Edges, &payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ExportFormat{}, models.SnapshotInfo{}, models.ErrSnapshotNotFound
		}

		return models.ExportFormat{}, models.SnapshotInfo{}, fmt.Errorf("querying latest snapshot: %w", err)
	}

	var export models.ExportFormat
	if err := json.Unmarshal(payload, &export); err != nil {
		return models.ExportFormat{}, models.SnapshotInfo{}, fmt.Errorf("unmarshalling snapshot payload: %w", err)
	}

	return export, info, nil
}

// Prune deletes all but the newest keep snapshots, returning how many rows
// were removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 1 {
		return 0, fmt.Errorf("keep must be at least 1, got %d", keep)
	}

	tag, err := s.pool.Exec(ctx,
		`DELETE FROM graph_snapshots
		 WHERE id NOT IN (
		     SELECT id FROM graph_snapshots ORDER BY id DESC LIMIT $1
		 )`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("pruning snapshots: %w", err)
	}

	return tag.RowsAffected(), nil
}

// HealthCheck verifies archive database connectivity.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.pool.HealthCheck(ctx)
}
