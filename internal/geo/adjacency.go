// Package geo provides the static county adjacency table used for proximity
// detection between articles.
package geo

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Table maps a county to the set of counties bordering it. Lookups are
// case- and whitespace-insensitive. The table is immutable after construction.
type Table struct {
	neighbors map[string]map[string]bool
}

// New builds a Table from a county -> neighbors mapping. Adjacency is
// symmetrized: if the input lists B as a neighbor of A, A is also recorded
// as a neighbor of B.
func New(adjacency map[string][]string) *Table {
	t := &Table{neighbors: make(map[string]map[string]bool, len(adjacency))}

	for county, list := range adjacency {
		for _, n := range list {
			t.add(county, n)
			t.add(n, county)
		}
	}

	return t
}

func (t *Table) add(county, neighbor string) {
	c := normalize(county)
	n := normalize(neighbor)

	if c == "" || n == "" || c == n {
		return
	}

	if t.neighbors[c] == nil {
		t.neighbors[c] = make(map[string]bool)
	}

	t.neighbors[c][n] = true
}

// Adjacent reports whether two distinct counties border each other.
// A county is never adjacent to itself.
func (t *Table) Adjacent(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	if na == nb {
		return false
	}

	return t.neighbors[na][nb]
}

// Neighbors returns the sorted neighbor list for a county, or nil if the
// county is unknown.
func (t *Table) Neighbors(county string) []string {
	set := t.neighbors[normalize(county)]
	if len(set) == 0 {
		return nil
	}

	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}

	sort.Strings(out)

	return out
}

// LoadFile reads a county adjacency table from a JSON file holding a
// county -> neighbor-list object.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading adjacency file: %w", err)
	}

	var adjacency map[string][]string
	if err := json.Unmarshal(data, &adjacency); err != nil {
		return nil, fmt.Errorf("parsing adjacency file: %w", err)
	}

	return New(adjacency), nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
