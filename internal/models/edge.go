package models

// Edge is the single aggregated connection between a pair of articles.
// It exists iff at least one relationship was detected between the pair;
// multiple relationship types accumulate into the Relationships list, they
// never create parallel edges. Weight is the maximum relationship weight.
type Edge struct {
	Source        string         `json:"source"`
	Target        string         `json:"target"`
	Relationships []Relationship `json:"relationships"`
	Weight        float64        `json:"weight"`
}

// NewEdge builds an edge from a non-empty relationship list, computing the
// aggregate weight as the strongest relationship weight.
func NewEdge(source, target string, rels []Relationship) Edge {
	weight := 0.0
	for _, r := range rels {
		if r.Weight > weight {
			weight = r.Weight
		}
	}

	return Edge{Source: source, Target: target, Relationships: rels, Weight: weight}
}

// Other returns the endpoint of the edge that is not id.
func (e Edge) Other(id string) string {
	if e.Source == id {
		return e.Target
	}

	return e.Source
}
