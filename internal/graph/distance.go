package graph

import (
	"container/heap"
	"math"
	"sort"

	"github.com/clubgraph/clubgraph/internal/models"
)

// minEdgeWeight floors the weight in the cost transform, bounding the cost
// of any single edge at 10.
const minEdgeWeight = 0.1

// edgeCost inverts edge weight into traversal cost so that Dijkstra follows
// the strongest evidence chain: a weight-1.0 edge costs 1, a weight-0.4
// edge costs 2.5.
func edgeCost(e *models.Edge) float64 {
	w := e.Weight
	if w < minEdgeWeight {
		w = minEdgeWeight
	}

	return 1 / w
}

// parentLink records the shortest-path-tree predecessor of a node and the
// edge crossed to reach it.
type parentLink struct {
	id   string
	edge *models.Edge
}

// Distance computes the shortest path between two stored articles. Weighted
// mode minimizes cumulative inverted-weight cost via Dijkstra; unweighted
// mode counts hops via BFS. An unreachable target is a normal result with
// distance +Inf and an empty path, never an error.
func (s *Store) Distance(fromID, toID string, mode models.DistanceMode) (models.DistanceResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.articles[fromID]; !exists {
		return models.DistanceResult{}, models.ErrArticleNotFound
	}

	if _, exists := s.articles[toID]; !exists {
		return models.DistanceResult{}, models.ErrArticleNotFound
	}

	if fromID == toID {
		return models.DistanceResult{
			Distance: 0,
			Path:     []models.PathStep{{Article: s.articles[fromID]}},
		}, nil
	}

	dist, parent := s.shortestPathTreeLocked(fromID, mode)

	d, reached := dist[toID]
	if !reached {
		return models.DistanceResult{Distance: math.Inf(1), Path: []models.PathStep{}}, nil
	}

	// Walk the parent trail back from the target, then reverse.
	trail := []string{toID}
	for current := toID; current != fromID; {
		p := parent[current]
		trail = append(trail, p.id)
		current = p.id
	}

	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	// Each non-terminal step carries the edge leading to the next step.
	steps := make([]models.PathStep, len(trail))
	for i, id := range trail {
		steps[i] = models.PathStep{Article: s.articles[id]}
		if i+1 < len(trail) {
			edge := *parent[trail[i+1]].edge
			steps[i].Edge = &edge
		}
	}

	return models.DistanceResult{Distance: d, Path: steps}, nil
}

// WithinDistance returns every other article whose distance from sourceID is
// at most maxDistance, grouped by exact distance value in ascending order.
// Each entry carries the edge from its shortest-path-tree predecessor. The
// whole query is a single Dijkstra/BFS pass from the source.
func (s *Store) WithinDistance(sourceID string, maxDistance float64, mode models.DistanceMode) ([]models.DistanceGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.articles[sourceID]; !exists {
		return nil, models.ErrArticleNotFound
	}

	dist, parent := s.shortestPathTreeLocked(sourceID, mode)

	byDistance := make(map[float64][]models.Connection)

	for _, id := range s.order {
		if id == sourceID {
			continue
		}

		d, reached := dist[id]
		if !reached || d > maxDistance {
			continue
		}

		byDistance[d] = append(byDistance[d], models.Connection{
			Article: s.articles[id],
			Edge:    *parent[id].edge,
		})
	}

	groups := make([]models.DistanceGroup, 0, len(byDistance))
	for d, articles := range byDistance {
		groups = append(groups, models.DistanceGroup{Distance: d, Articles: articles})
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Distance < groups[j].Distance })

	return groups, nil
}

// shortestPathTreeLocked computes distances and predecessors for every node
// reachable from source. Assumes at least a read lock is held and that
// source exists.
func (s *Store) shortestPathTreeLocked(source string, mode models.DistanceMode) (map[string]float64, map[string]parentLink) {
	if mode == models.ModeUnweighted {
		return s.bfsTreeLocked(source)
	}

	return s.dijkstraTreeLocked(source)
}

// bfsTreeLocked computes hop counts with breadth-first search.
func (s *Store) bfsTreeLocked(source string) (map[string]float64, map[string]parentLink) {
	dist := map[string]float64{source: 0}
	parent := map[string]parentLink{}
	frontier := []string{source}

	for len(frontier) > 0 {
		var next []string

		for _, id := range frontier {
			for _, other := range s.sortedNeighborsLocked(id) {
				if _, seen := dist[other]; seen {
					continue
				}

				dist[other] = dist[id] + 1
				parent[other] = parentLink{id: id, edge: s.adj[id][other]}
				next = append(next, other)
			}
		}

		frontier = next
	}

	return dist, parent
}

// dijkstraTreeLocked computes minimum cumulative inverted-weight cost with
// Dijkstra's algorithm over a binary heap, using lazy deletion for
// superseded queue entries.
func (s *Store) dijkstraTreeLocked(source string) (map[string]float64, map[string]parentLink) {
	dist := map[string]float64{source: 0}
	parent := map[string]parentLink{}
	settled := map[string]bool{}

	pq := &costQueue{{id: source, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(costItem)
		if settled[item.id] {
			continue
		}

		settled[item.id] = true

		for _, other := range s.sortedNeighborsLocked(item.id) {
			if settled[other] {
				continue
			}

			edge := s.adj[item.id][other]
			candidate := dist[item.id] + edgeCost(edge)

			if current, seen := dist[other]; !seen || candidate < current {
				dist[other] = candidate
				parent[other] = parentLink{id: item.id, edge: edge}
				heap.Push(pq, costItem{id: other, cost: candidate})
			}
		}
	}

	return dist, parent
}

// sortedNeighborsLocked returns neighbor IDs in insertion order so traversal
// results are deterministic within a run.
func (s *Store) sortedNeighborsLocked(id string) []string {
	out := make([]string, 0, len(s.adj[id]))
	for other := range s.adj[id] {
		out = append(out, other)
	}

	sort.Slice(out, func(i, j int) bool { return s.seq[out[i]] < s.seq[out[j]] })

	return out
}

// costItem is a priority queue entry for Dijkstra.
type costItem struct {
	id   string
	cost float64
}

// costQueue implements heap.Interface ordered by ascending cost.
type costQueue []costItem

func (q costQueue) Len() int           { return len(q) }
func (q costQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q costQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *costQueue) Push(x any)        { *q = append(*q, x.(costItem)) }
func (q *costQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
