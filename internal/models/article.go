// Package models defines data types for the article relevance graph.
package models

import (
	"time"

	"github.com/google/uuid"
)

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

// ArticleMetadata is the structured fact set the upstream extractor attaches
// to an article. All fields arrive trimmed and canonicalized; relationship
// matching is case-insensitive but original casing is preserved for display.
type ArticleMetadata struct {
	Clubs         []Club   `json:"clubs"`
	Matches       []Match  `json:"matches"`
	PrimaryCounty string   `json:"primary_county"`
	Leagues       []string `json:"leagues"`
	Sport         string   `json:"sport,omitempty"`
}

// Article is a node in the relevance graph. Immutable after insertion;
// updates are remove + reinsert under a new ID.
type Article struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Metadata  ArticleMetadata `json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
}

// IngestArticleRequest is the payload for inserting a new article.
type IngestArticleRequest struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Metadata ArticleMetadata `json:"metadata"`
}

// Validate checks that required fields are present and within limits.
// If ID is empty, a UUID is auto-generated.
func (r *IngestArticleRequest) Validate() error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	if len(r.ID) > 255 {
		return ErrFieldTooLong("id", 255)
	}

	if r.Title == "" {
		return ErrMissingTitle
	}

	if len(r.Title) > 10000 {
		return ErrFieldTooLong("title", 10000)
	}

	if r.Metadata.PrimaryCounty == "" {
		return ErrMissingCounty
	}

	for _, c := range r.Metadata.Clubs {
		if c.Name == "" {
			return ErrEmptyClubName
		}
	}

	for _, m := range r.Metadata.Matches {
		if m.HomeTeam == "" || m.AwayTeam == "" {
			return ErrEmptyTeamName
		}
	}

	return nil
}
