package client

import (
	"fmt"
	"strconv"
	"strings"

	"filmbox/internal/catalog"
)

// Form holds the raw user input for a create request before validation.
type Form struct {
	Name        string
	Director    string
	Year        string
	Category    string
	Runtime     string
	Description string
}

// Validate checks the form the way the interactive client does: every
// required field non-empty, year and runtime parseable as integers. A
// failed validation means no request is sent at all.
func (f Form) Validate() (catalog.Draft, error) {
	var draft catalog.Draft

	name := strings.TrimSpace(f.Name)
	director := strings.TrimSpace(f.Director)
	year := strings.TrimSpace(f.Year)
	category := strings.TrimSpace(f.Category)
	runtime := strings.TrimSpace(f.Runtime)

	switch {
	case name == "":
		return draft, fmt.Errorf("film name is required")
	case director == "":
		return draft, fmt.Errorf("director is required")
	case year == "":
		return draft, fmt.Errorf("year is required")
	case category == "":
		return draft, fmt.Errorf("category is required")
	}

	if _, err := strconv.Atoi(year); err != nil {
		return draft, fmt.Errorf("year must be a number, got %q", year)
	}

	var runtimeMinutes int
	if runtime != "" {
		parsed, err := strconv.Atoi(runtime)
		if err != nil {
			return draft, fmt.Errorf("runtime must be a number of minutes, got %q", runtime)
		}
		runtimeMinutes = parsed
	}

	return catalog.Draft{
		Name:        name,
		Director:    director,
		Year:        year,
		Category:    category,
		Runtime:     runtimeMinutes,
		Description: strings.TrimSpace(f.Description),
	}, nil
}
