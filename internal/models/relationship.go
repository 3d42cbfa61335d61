package models

// RelationType classifies how two articles are connected.
type RelationType string

// Relationship types detected between article metadata records.
const (
	RelationSameClub    RelationType = "SAME_CLUB"
	RelationProximity   RelationType = "PROXIMITY"
	RelationMatchPlayed RelationType = "MATCH_PLAYED"
	RelationSameLeague  RelationType = "SAME_LEAGUE"
)

// Fixed weights per relationship type, all in (0, 1].
const (
	WeightSameClub    = 1.0
	WeightProximity   = 0.4
	WeightMatchPlayed = 0.9
	WeightSameLeague  = 0.5
)

// Relationship is a typed, weighted, evidenced signal that two articles are
// connected. Evidence holds the matched entity names in their original casing.
type Relationship struct {
	Type     RelationType `json:"type"`
	Weight   float64      `json:"weight"`
	Evidence []string     `json:"evidence"`
}
