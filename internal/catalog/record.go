package catalog

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound marks lookups for records that do not exist in the store.
	ErrNotFound = errors.New("record not found")
	// ErrValidation marks requests rejected for missing or malformed fields.
	ErrValidation = errors.New("validation error")
)

// Categories is the display vocabulary offered by the client. The service
// accepts and stores any category string; this list is not enforced.
var Categories = []string{"Drama", "Crime", "Action", "Sci-Fi", "Romance", "Animation"}

// Record is the canonical catalog entry. Year is kept in its string form
// because it is displayed as-is; Runtime is minutes with 0 meaning absent.
// CreatedAt is the service-assigned creation timestamp, RFC 3339.
type Record struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Year        string `json:"year,omitempty"`
	Director    string `json:"director,omitempty"`
	Category    string `json:"category"`
	Runtime     int    `json:"runtime,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Draft holds caller-supplied fields for a create request. The service
// assigns ID and CreatedAt.
type Draft struct {
	Name        string `json:"name"`
	Year        string `json:"year,omitempty"`
	Director    string `json:"director,omitempty"`
	Category    string `json:"category"`
	Runtime     int    `json:"runtime,omitempty"`
	Description string `json:"description,omitempty"`
}

// Validate reports the first missing required field, matching the wire
// error format "Missing required field: <name>".
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return missingField("name")
	}
	if strings.TrimSpace(d.Category) == "" {
		return missingField("category")
	}
	return nil
}

func missingField(field string) error {
	return &FieldError{Field: field}
}

// FieldError identifies a missing required field in a create request.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return "Missing required field: " + e.Field
}

func (e *FieldError) Unwrap() error { return ErrValidation }

// MatchesCategory reports whether the record belongs to the given
// category, compared case-insensitively.
func (r Record) MatchesCategory(category string) bool {
	return strings.EqualFold(strings.TrimSpace(r.Category), strings.TrimSpace(category))
}

// MatchesName reports an exact, case-insensitive name match.
func (r Record) MatchesName(name string) bool {
	return strings.EqualFold(r.Name, name)
}

// MatchesQuery reports a substring match of query against name or
// director, case-insensitively.
func (r Record) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Director), q)
}
