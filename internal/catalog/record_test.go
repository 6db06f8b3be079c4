package catalog

import (
	"errors"
	"testing"
)

func TestDraftValidate(t *testing.T) {
	cases := []struct {
		name      string
		draft     Draft
		wantField string
	}{
		{"valid", Draft{Name: "Dune", Category: "Sci-Fi"}, ""},
		{"missing name", Draft{Category: "Sci-Fi"}, "name"},
		{"missing category", Draft{Name: "Dune"}, "category"},
		{"blank name", Draft{Name: "   ", Category: "Sci-Fi"}, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("error not tagged as validation: %v", err)
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) || fieldErr.Field != tc.wantField {
				t.Errorf("error = %v, want missing field %q", err, tc.wantField)
			}
			want := "Missing required field: " + tc.wantField
			if err.Error() != want {
				t.Errorf("message = %q, want %q", err.Error(), want)
			}
		})
	}
}

func TestMatchesCategoryCaseInsensitive(t *testing.T) {
	rec := Record{Category: "Drama"}
	if !rec.MatchesCategory("drama") {
		t.Error("lowercase category should match")
	}
	if !rec.MatchesCategory("DRAMA") {
		t.Error("uppercase category should match")
	}
	if rec.MatchesCategory("Crime") {
		t.Error("different category should not match")
	}
}

func TestMatchesQuery(t *testing.T) {
	rec := Record{Name: "The Godfather", Director: "Francis Ford Coppola"}
	if !rec.MatchesQuery("godfather") {
		t.Error("name substring should match")
	}
	if !rec.MatchesQuery("coppola") {
		t.Error("director substring should match")
	}
	if rec.MatchesQuery("tarantino") {
		t.Error("unrelated query should not match")
	}
}
