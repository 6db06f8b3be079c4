package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// rawRecord mirrors a record object as it may appear on the wire or on
// disk, including the legacy key names and loosely typed scalars.
type rawRecord struct {
	ID              json.RawMessage `json:"id"`
	Name            string          `json:"name"`
	Year            json.RawMessage `json:"year"`
	PublicationDate json.RawMessage `json:"publication_date"`
	Director        string          `json:"director"`
	Author          string          `json:"author"`
	Category        string          `json:"category"`
	Runtime         json.RawMessage `json:"runtime"`
	Description     string          `json:"description"`
	CreatedAt       string          `json:"created_at"`
}

// UnmarshalJSON normalizes a raw object into the canonical shape: legacy
// keys (author, publication_date) are read transparently with the modern
// keys preferred, ids and runtimes tolerate string or number encodings,
// and malformed ids collapse to 0 instead of failing the decode.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = normalize(raw)
	return nil
}

// UnmarshalJSON applies the same aliasing rules in the write direction,
// so create bodies may supply either naming scheme.
func (d *Draft) UnmarshalJSON(data []byte) error {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rec := normalize(raw)
	*d = Draft{
		Name:        rec.Name,
		Year:        rec.Year,
		Director:    rec.Director,
		Category:    rec.Category,
		Runtime:     rec.Runtime,
		Description: rec.Description,
	}
	return nil
}

func normalize(raw rawRecord) Record {
	rec := Record{
		ID:          scalarInt(raw.ID),
		Name:        raw.Name,
		Year:        scalarString(raw.Year),
		Director:    raw.Director,
		Category:    raw.Category,
		Runtime:     int(scalarInt(raw.Runtime)),
		Description: raw.Description,
		CreatedAt:   raw.CreatedAt,
	}
	if rec.Director == "" {
		rec.Director = raw.Author
	}
	if rec.Year == "" {
		rec.Year = scalarString(raw.PublicationDate)
	}
	return rec
}

// scalarString renders a JSON scalar as its display string: strings are
// unquoted, numbers formatted, anything else becomes empty.
func scalarString(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		return n.String()
	}
	return ""
}

// scalarInt parses a JSON scalar as an integer. Non-numeric and malformed
// values are treated as 0 rather than surfaced as errors.
func scalarInt(data json.RawMessage) int64 {
	if len(data) == 0 {
		return 0
	}
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return v
		}
	}
	return 0
}
