package models

import "time"

// ExportFormat is the canonical serializable snapshot of the graph: the full
// node list and edge list with every relationship and weight reproduced. It
// doubles as the interchange format when the engine sits behind an API and as
// the archive payload.
type ExportFormat struct {
	SchemaVersion int         `json:"schema_version"`
	ExportedAt    time.Time   `json:"exported_at"`
	Stats         ExportStats `json:"stats"`
	Articles      []Article   `json:"articles"`
	Edges         []Edge      `json:"edges"`
}

// ExportStats summarises the contents of an export.
type ExportStats struct {
	ArticleCount int `json:"article_count"`
	EdgeCount    int `json:"edge_count"`
}

// ExportSchemaVersion is the current export payload version.
const ExportSchemaVersion = 1

// SnapshotInfo describes a snapshot row in the archive without its payload.
type SnapshotInfo struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Articles  int       `json:"articles"`
	Edges     int       `json:"edges"`
}
