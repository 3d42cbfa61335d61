package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// DistanceMode selects how path cost is computed.
type DistanceMode string

// Supported distance modes.
const (
	// ModeWeighted runs Dijkstra with edge cost 1/max(weight, 0.1), so paths
	// follow the strongest evidence chain rather than raw hop count.
	ModeWeighted DistanceMode = "weighted"
	// ModeUnweighted counts hops via BFS, ignoring edge weight.
	ModeUnweighted DistanceMode = "unweighted"
)

// ParseDistanceMode validates a mode string, defaulting to weighted when empty.
func ParseDistanceMode(s string) (DistanceMode, error) {
	switch DistanceMode(s) {
	case "":
		return ModeWeighted, nil
	case ModeWeighted, ModeUnweighted:
		return DistanceMode(s), nil
	default:
		return "", fmt.Errorf("invalid distance mode %q (want weighted or unweighted)", s)
	}
}

// Connection pairs a neighboring article with the edge connecting it.
type Connection struct {
	Article Article `json:"article"`
	Edge    Edge    `json:"edge"`
}

// IngestResult is returned after inserting an article: the stored article
// plus everything it connected to at distance 1.
type IngestResult struct {
	Article     Article      `json:"article"`
	Connections []Connection `json:"connections"`
}

// ArticleContext is an article with its direct neighbor list.
type ArticleContext struct {
	Article     Article      `json:"article"`
	Connections []Connection `json:"connections"`
}

// PathStep is one element of a reconstructed shortest path. Edge is the edge
// leading to the next step; it is nil on the terminal step.
type PathStep struct {
	Article Article `json:"article"`
	Edge    *Edge   `json:"edge,omitempty"`
}

// DistanceResult is the outcome of a shortest-path query. An unreachable
// target is a normal result: Distance is +Inf and Path is empty.
type DistanceResult struct {
	Distance float64    `json:"distance"`
	Path     []PathStep `json:"path"`
}

// Reachable reports whether a path exists.
func (r DistanceResult) Reachable() bool {
	return !math.IsInf(r.Distance, 1)
}

// MarshalJSON renders an unreachable distance as null, since IEEE infinity
// has no JSON representation.
func (r DistanceResult) MarshalJSON() ([]byte, error) {
	type alias struct {
		Distance  *float64   `json:"distance"`
		Reachable bool       `json:"reachable"`
		Path      []PathStep `json:"path"`
	}

	a := alias{Reachable: r.Reachable(), Path: r.Path}
	if a.Path == nil {
		a.Path = []PathStep{}
	}

	if r.Reachable() {
		d := r.Distance
		a.Distance = &d
	}

	return json.Marshal(a)
}

// DistanceGroup collects the articles found at one exact distance value from
// the source of a WithinDistance query. Each connection carries the edge from
// the article's predecessor on the shortest-path tree.
type DistanceGroup struct {
	Distance float64      `json:"distance"`
	Articles []Connection `json:"articles"`
}

// RelatedLevel buckets related articles by integer distance level for
// presentation. Fractional weighted distances bucket under their ceiling.
type RelatedLevel struct {
	Level    int          `json:"level"`
	Articles []Connection `json:"articles"`
}

// RelatedResult is the facade-level view of a within-distance query.
type RelatedResult struct {
	Article Article        `json:"article"`
	Mode    DistanceMode   `json:"mode"`
	Levels  []RelatedLevel `json:"levels"`
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
