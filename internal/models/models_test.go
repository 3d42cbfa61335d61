package models

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestIngestArticleRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     IngestArticleRequest
		wantErr error
	}{
		{
			name: "valid",
			req: IngestArticleRequest{
				ID:    "a1",
				Title: "Final preview",
				Metadata: ArticleMetadata{
					PrimaryCounty: "Dublin",
					Clubs:         []Club{{Name: "Dublin GAA"}},
				},
			},
		},
		{
			name:    "missing title",
			req:     IngestArticleRequest{ID: "a1", Metadata: ArticleMetadata{PrimaryCounty: "Dublin"}},
			wantErr: ErrMissingTitle,
		},
		{
			name:    "missing county",
			req:     IngestArticleRequest{ID: "a1", Title: "t"},
			wantErr: ErrMissingCounty,
		},
		{
			name: "empty club name",
			req: IngestArticleRequest{
				ID: "a1", Title: "t",
				Metadata: ArticleMetadata{PrimaryCounty: "Dublin", Clubs: []Club{{Name: ""}}},
			},
			wantErr: ErrEmptyClubName,
		},
		{
			name: "match without away team",
			req: IngestArticleRequest{
				ID: "a1", Title: "t",
				Metadata: ArticleMetadata{PrimaryCounty: "Dublin", Matches: []Match{{HomeTeam: "Na Fianna"}}},
			},
			wantErr: ErrEmptyTeamName,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestIngestArticleRequestValidate_GeneratesID(t *testing.T) {
	req := IngestArticleRequest{Title: "t", Metadata: ArticleMetadata{PrimaryCounty: "Dublin"}}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if req.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestIngestArticleRequestValidate_LongID(t *testing.T) {
	req := IngestArticleRequest{
		ID:       strings.Repeat("x", 256),
		Title:    "t",
		Metadata: ArticleMetadata{PrimaryCounty: "Dublin"},
	}
	if err := req.Validate(); err == nil {
		t.Error("expected error for over-long id")
	}
}

func TestNewEdge_MaxWeight(t *testing.T) {
	e := NewEdge("a", "b", []Relationship{
		{Type: RelationSameLeague, Weight: WeightSameLeague},
		{Type: RelationSameClub, Weight: WeightSameClub},
	})

	if e.Weight != WeightSameClub {
		t.Errorf("weight = %v, want %v", e.Weight, WeightSameClub)
	}
	if len(e.Relationships) != 2 {
		t.Errorf("relationships = %d, want 2", len(e.Relationships))
	}
}

func TestEdgeOther(t *testing.T) {
	e := Edge{Source: "a", Target: "b"}
	if got := e.Other("a"); got != "b" {
		t.Errorf("Other(a) = %q, want b", got)
	}
	if got := e.Other("b"); got != "a" {
		t.Errorf("Other(b) = %q, want a", got)
	}
}

func TestParseDistanceMode(t *testing.T) {
	tests := []struct {
		in      string
		want    DistanceMode
		wantErr bool
	}{
		{in: "", want: ModeWeighted},
		{in: "weighted", want: ModeWeighted},
		{in: "unweighted", want: ModeUnweighted},
		{in: "fastest", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseDistanceMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDistanceMode(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDistanceMode(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDistanceMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDistanceResultMarshal_Unreachable(t *testing.T) {
	data, err := json.Marshal(DistanceResult{Distance: math.Inf(1)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out struct {
		Distance  *float64   `json:"distance"`
		Reachable bool       `json:"reachable"`
		Path      []PathStep `json:"path"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if out.Distance != nil {
		t.Errorf("distance = %v, want null", *out.Distance)
	}
	if out.Reachable {
		t.Error("reachable = true, want false")
	}
	if out.Path == nil || len(out.Path) != 0 {
		t.Errorf("path = %v, want empty array", out.Path)
	}
}

func TestDistanceResultMarshal_Reachable(t *testing.T) {
	data, err := json.Marshal(DistanceResult{
		Distance: 3.5,
		Path:     []PathStep{{Article: Article{ID: "a"}}},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out struct {
		Distance  *float64 `json:"distance"`
		Reachable bool     `json:"reachable"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if out.Distance == nil || *out.Distance != 3.5 {
		t.Errorf("distance = %v, want 3.5", out.Distance)
	}
	if !out.Reachable {
		t.Error("reachable = false, want true")
	}
}
