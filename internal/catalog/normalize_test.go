package catalog

import (
	"encoding/json"
	"testing"
)

func TestRecordDecodeLegacyAliases(t *testing.T) {
	raw := []byte(`{"id": 1, "name": "The Godfather", "publication_date": "1972", "author": "Francis Ford Coppola", "category": "Crime"}`)

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if rec.Director != "Francis Ford Coppola" {
		t.Errorf("Director = %q, want author fallback", rec.Director)
	}
	if rec.Year != "1972" {
		t.Errorf("Year = %q, want publication_date fallback", rec.Year)
	}
}

func TestRecordDecodePrefersModernKeys(t *testing.T) {
	raw := []byte(`{"id": 2, "name": "Dune", "year": 2021, "publication_date": "1984", "director": "Denis Villeneuve", "author": "David Lynch", "category": "Sci-Fi"}`)

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if rec.Director != "Denis Villeneuve" {
		t.Errorf("Director = %q, want modern key preferred", rec.Director)
	}
	if rec.Year != "2021" {
		t.Errorf("Year = %q, want modern key preferred", rec.Year)
	}
}

func TestRecordDecodeScalarTolerance(t *testing.T) {
	cases := []struct {
		name        string
		raw         string
		wantID      int64
		wantYear    string
		wantRuntime int
	}{
		{"string id", `{"id": "7", "name": "x", "category": "Drama"}`, 7, "", 0},
		{"non-numeric id", `{"id": "abc", "name": "x", "category": "Drama"}`, 0, "", 0},
		{"numeric year", `{"id": 1, "name": "x", "year": 1994, "category": "Drama"}`, 1, "1994", 0},
		{"string runtime", `{"id": 1, "name": "x", "runtime": "142", "category": "Drama"}`, 1, "", 142},
		{"empty runtime", `{"id": 1, "name": "x", "runtime": "", "category": "Drama"}`, 1, "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rec Record
			if err := json.Unmarshal([]byte(tc.raw), &rec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if rec.ID != tc.wantID {
				t.Errorf("ID = %d, want %d", rec.ID, tc.wantID)
			}
			if rec.Year != tc.wantYear {
				t.Errorf("Year = %q, want %q", rec.Year, tc.wantYear)
			}
			if rec.Runtime != tc.wantRuntime {
				t.Errorf("Runtime = %d, want %d", rec.Runtime, tc.wantRuntime)
			}
		})
	}
}

func TestDraftDecodeAcceptsAliases(t *testing.T) {
	raw := []byte(`{"name": "Pulp Fiction", "publication_date": "1994", "author": "Quentin Tarantino", "category": "Crime"}`)

	var draft Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if draft.Director != "Quentin Tarantino" {
		t.Errorf("Director = %q, want alias accepted on create", draft.Director)
	}
	if draft.Year != "1994" {
		t.Errorf("Year = %q, want alias accepted on create", draft.Year)
	}
}

func TestRecordMarshalEmitsCanonicalKeys(t *testing.T) {
	rec := Record{ID: 4, Name: "Dune", Year: "2021", Director: "Denis Villeneuve", Category: "Sci-Fi"}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal round-trip: %v", err)
	}
	if _, ok := decoded["author"]; ok {
		t.Error("marshal emitted legacy author key")
	}
	if _, ok := decoded["publication_date"]; ok {
		t.Error("marshal emitted legacy publication_date key")
	}
	if decoded["director"] != "Denis Villeneuve" {
		t.Errorf("director = %v", decoded["director"])
	}
}
