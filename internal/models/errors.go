package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingTitle  = errors.New("title is required")
	ErrMissingCounty = errors.New("primary county is required")
	ErrEmptyClubName = errors.New("club name must not be empty")
	ErrEmptyTeamName = errors.New("match teams must not be empty")
)

// Sentinel errors for entity lookups.
var ErrArticleNotFound = errors.New("article not found")

// ErrDuplicateArticle indicates an insert of an already stored article ID
// (maps to HTTP 409 Conflict).
var ErrDuplicateArticle = errors.New("duplicate article id")

// ErrSnapshotNotFound indicates the snapshot archive holds no snapshots yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
