// Package relate detects typed, weighted relationships between the metadata
// of two articles. Detection is pure: it reads both inputs, consults the
// county adjacency table, and never mutates anything.
package relate

import (
	"strings"

	"github.com/clubgraph/clubgraph/internal/geo"
	"github.com/clubgraph/clubgraph/internal/models"
)

// Detector evaluates the four relationship checks between article metadata.
type Detector struct {
	counties *geo.Table
}

// NewDetector creates a Detector backed by the given adjacency table.
func NewDetector(counties *geo.Table) *Detector {
	return &Detector{counties: counties}
}

// Detect returns every relationship found between a and b. The four checks
// are independent; any subset may fire. An empty result means the articles
// are unrelated and no edge should exist between them.
func (d *Detector) Detect(a, b models.ArticleMetadata) []models.Relationship {
	var rels []models.Relationship

	if r, ok := d.sameClub(a, b); ok {
		rels = append(rels, r)
	}

	if r, ok := d.proximity(a, b); ok {
		rels = append(rels, r)
	}

	if r, ok := d.matchPlayed(a, b); ok {
		rels = append(rels, r)
	}

	if r, ok := d.sameLeague(a, b); ok {
		rels = append(rels, r)
	}

	return rels
}

// sameClub fires when any club name appears in both articles. Evidence keeps
// the casing from a, first occurrence wins.
func (d *Detector) sameClub(a, b models.ArticleMetadata) (models.Relationship, bool) {
	bNames := make(map[string]bool, len(b.Clubs))
	for _, c := range b.Clubs {
		bNames[normalize(c.Name)] = true
	}

	ev := newEvidence()

	for _, c := range a.Clubs {
		if bNames[normalize(c.Name)] {
			ev.add(c.Name)
		}
	}

	if ev.empty() {
		return models.Relationship{}, false
	}

	return models.Relationship{
		Type:     models.RelationSameClub,
		Weight:   models.WeightSameClub,
		Evidence: ev.list(),
	}, true
}

// proximity fires only for distinct counties that the adjacency table marks
// as neighbors. Articles about the same county share stronger signals (club,
// league) and never produce a proximity relationship.
func (d *Detector) proximity(a, b models.ArticleMetadata) (models.Relationship, bool) {
	if normalize(a.PrimaryCounty) == normalize(b.PrimaryCounty) {
		return models.Relationship{}, false
	}

	if !d.counties.Adjacent(a.PrimaryCounty, b.PrimaryCounty) {
		return models.Relationship{}, false
	}

	return models.Relationship{
		Type:     models.RelationProximity,
		Weight:   models.WeightProximity,
		Evidence: []string{a.PrimaryCounty, b.PrimaryCounty},
	}, true
}

// matchPlayed fires when any match in a and any match in b involve at least
// one common team. Evidence holds the deduplicated "home vs away" strings of
// every firing pair.
func (d *Detector) matchPlayed(a, b models.ArticleMetadata) (models.Relationship, bool) {
	ev := newEvidence()

	for _, ma := range a.Matches {
		for _, mb := range b.Matches {
			if !teamsOverlap(ma, mb) {
				continue
			}

			ev.add(ma.HomeTeam + " vs " + ma.AwayTeam)
			ev.add(mb.HomeTeam + " vs " + mb.AwayTeam)
		}
	}

	if ev.empty() {
		return models.Relationship{}, false
	}

	return models.Relationship{
		Type:     models.RelationMatchPlayed,
		Weight:   models.WeightMatchPlayed,
		Evidence: ev.list(),
	}, true
}

// teamsOverlap reports whether the two-team sets of two matches intersect.
func teamsOverlap(a, b models.Match) bool {
	ah, aa := normalize(a.HomeTeam), normalize(a.AwayTeam)
	bh, ba := normalize(b.HomeTeam), normalize(b.AwayTeam)

	return ah == bh || ah == ba || aa == bh || aa == ba
}

// sameLeague fires when any league appears in both articles. Evidence keeps
// the casing from a.
func (d *Detector) sameLeague(a, b models.ArticleMetadata) (models.Relationship, bool) {
	bLeagues := make(map[string]bool, len(b.Leagues))
	for _, l := range b.Leagues {
		bLeagues[normalize(l)] = true
	}

	ev := newEvidence()

	for _, l := range a.Leagues {
		if bLeagues[normalize(l)] {
			ev.add(l)
		}
	}

	if ev.empty() {
		return models.Relationship{}, false
	}

	return models.Relationship{
		Type:     models.RelationSameLeague,
		Weight:   models.WeightSameLeague,
		Evidence: ev.list(),
	}, true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// evidence accumulates display strings deduplicated case-insensitively,
// keeping the first-seen casing.
type evidence struct {
	seen  map[string]bool
	items []string
}

func newEvidence() *evidence {
	return &evidence{seen: make(map[string]bool)}
}

func (e *evidence) add(s string) {
	key := normalize(s)
	if key == "" || e.seen[key] {
		return
	}

	e.seen[key] = true
	e.items = append(e.items, strings.TrimSpace(s))
}

func (e *evidence) empty() bool { return len(e.items) == 0 }

func (e *evidence) list() []string { return e.items }
