package client

import "time"

// Club is a club mention extracted from an article.
type Club struct {
	Name   string `json:"name"`
	County string `json:"county,omitempty"`
	League string `json:"league,omitempty"`
}

// Match is a fixture or result extracted from an article.
type Match struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Result   string `json:"result,omitempty"`
}

// ArticleMetadata is the structured fact set attached to an article.
type ArticleMetadata struct {
	Clubs         []Club   `json:"clubs,omitempty"`
	Matches       []Match  `json:"matches,omitempty"`
	PrimaryCounty string   `json:"primary_county"`
	Leagues       []string `json:"leagues,omitempty"`
	Sport         string   `json:"sport,omitempty"`
}

// Article is a node in the relevance graph.
type Article struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Metadata  ArticleMetadata `json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
}

// IngestArticleRequest is the payload for inserting a new article. ID is
// optional; the server generates a UUID when it is empty.
type IngestArticleRequest struct {
	ID       string          `json:"id,omitempty"`
	Title    string          `json:"title"`
	Metadata ArticleMetadata `json:"metadata"`
}

// Relationship is one detected link between two articles.
type Relationship struct {
	Type     string   `json:"type"`
	Weight   float64  `json:"weight"`
	Evidence []string `json:"evidence"`
}

// Edge aggregates every relationship between a pair of articles.
type Edge struct {
	Source        string         `json:"source"`
	Target        string         `json:"target"`
	Relationships []Relationship `json:"relationships"`
	Weight        float64        `json:"weight"`
}

// Connection pairs a neighboring article with the edge connecting it.
type Connection struct {
	Article Article `json:"article"`
	Edge    Edge    `json:"edge"`
}

// IngestResult is returned after inserting an article.
type IngestResult struct {
	Article     Article      `json:"article"`
	Connections []Connection `json:"connections"`
}

// ArticleContext is an article with its direct neighbor list.
type ArticleContext struct {
	Article     Article      `json:"article"`
	Connections []Connection `json:"connections"`
}

// PathStep is one element of a shortest path. Edge leads to the next step and
// is nil on the terminal step.
type PathStep struct {
	Article Article `json:"article"`
	Edge    *Edge   `json:"edge,omitempty"`
}

// DistanceResult is the outcome of a shortest-path query. Distance is nil
// when the target is unreachable.
type DistanceResult struct {
	Distance  *float64   `json:"distance"`
	Reachable bool       `json:"reachable"`
	Path      []PathStep `json:"path"`
}

// RelatedLevel buckets related articles by integer distance level.
type RelatedLevel struct {
	Level    int          `json:"level"`
	Articles []Connection `json:"articles"`
}

// RelatedResult is the response of a related-articles query.
type RelatedResult struct {
	Article Article        `json:"article"`
	Mode    string         `json:"mode"`
	Levels  []RelatedLevel `json:"levels"`
}

// ScoreResult is the response of a relevance score query.
type ScoreResult struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Score float64 `json:"score"`
}

// MostConnected identifies the article with the most direct neighbors.
type MostConnected struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Connections int    `json:"connections"`
}

// GraphStats summarises the stored graph.
type GraphStats struct {
	Articles       int            `json:"articles"`
	Edges          int            `json:"edges"`
	AvgConnections float64        `json:"avg_connections"`
	MostConnected  *MostConnected `json:"most_connected,omitempty"`
	Counties       []string       `json:"counties"`
	Leagues        []string       `json:"leagues"`
}

// ExportStats summarises the contents of an export.
type ExportStats struct {
	ArticleCount int `json:"article_count"`
	EdgeCount    int `json:"edge_count"`
}

// ExportFormat is the full serializable snapshot of the graph.
type ExportFormat struct {
	SchemaVersion int         `json:"schema_version"`
	ExportedAt    time.Time   `json:"exported_at"`
	Stats         ExportStats `json:"stats"`
	Articles      []Article   `json:"articles"`
	Edges         []Edge      `json:"edges"`
}

// SnapshotInfo describes an archived snapshot without its payload.
type SnapshotInfo struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Articles  int       `json:"articles"`
	Edges     int       `json:"edges"`
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Articles      int     `json:"articles"`
	Edges         int     `json:"edges"`
	Subscribers   int     `json:"subscribers"`
	Archive       string  `json:"archive"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
