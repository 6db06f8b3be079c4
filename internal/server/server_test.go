package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"filmbox/internal/api"
	"filmbox/internal/store"
	"filmbox/internal/testsupport"
)

func newTestHandler(t *testing.T, storeContents []byte) http.Handler {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	st := store.New(cfg.Paths.StorePath, nil)
	if storeContents != nil {
		testsupport.WriteRawStore(t, cfg.Paths.StorePath, storeContents)
	}
	srv, err := New(cfg, st, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv.Handler()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, api.Reply) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var reply api.Reply
	if err := json.Unmarshal(rr.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode response for %s %s: %v\nbody: %s", method, target, err, rr.Body.String())
	}
	return rr, reply
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, nil)

	rr, reply := doRequest(t, h, http.MethodGet, "/api/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !reply.Success || reply.Message != "ok" {
		t.Errorf("reply = %+v", reply)
	}
}

func TestListEnvelope(t *testing.T) {
	h := newTestHandler(t, testsupport.SeedRecords())

	for _, target := range []string{"/api/media", "/api/films"} {
		rr, reply := doRequest(t, h, http.MethodGet, target, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", target, rr.Code)
		}
		if !reply.Success {
			t.Fatalf("GET %s success = false, error = %q", target, reply.Error)
		}
		if reply.Count == nil || *reply.Count != 3 {
			t.Errorf("GET %s count = %v, want 3", target, reply.Count)
		}
		records, err := reply.Records()
		if err != nil {
			t.Fatalf("decode records: %v", err)
		}
		if len(records) != 3 {
			t.Errorf("GET %s records = %d, want 3", target, len(records))
		}
	}
}

func TestListEmptyStoreReturnsEmptyArray(t *testing.T) {
	h := newTestHandler(t, nil)

	rr, reply := doRequest(t, h, http.MethodGet, "/api/media", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if reply.Count == nil || *reply.Count != 0 {
		t.Errorf("count = %v, want 0", reply.Count)
	}
	if string(reply.Data) != "[]" {
		t.Errorf("data = %s, want []", reply.Data)
	}
}

func TestListCorruptStoreReturnsEmptyList(t *testing.T) {
	h := newTestHandler(t, []byte("{definitely not json"))

	rr, reply := doRequest(t, h, http.MethodGet, "/api/media", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 on corrupt store", rr.Code)
	}
	if !reply.Success || reply.Count == nil || *reply.Count != 0 {
		t.Errorf("reply = %+v, want success with count 0", reply)
	}
}

func TestListCategoryFilter(t *testing.T) {
	h := newTestHandler(t, testsupport.SeedRecords())

	rr, reply := doRequest(t, h, http.MethodGet, "/api/media?category=crime", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if reply.Count == nil || *reply.Count != 2 {
		t.Errorf("count = %v, want 2", reply.Count)
	}

	// "All" is a pseudo category that disables the filter.
	_, all := doRequest(t, h, http.MethodGet, "/api/media?category=All", "")
	if all.Count == nil || *all.Count != 3 {
		t.Errorf("count for All = %v, want 3", all.Count)
	}
}

func TestCategoryRouteEchoesCategory(t *testing.T) {
	h := newTestHandler(t, testsupport.SeedRecords())

	rr, reply := doRequest(t, h, http.MethodGet, "/api/media/category/Drama", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if reply.Category != "Drama" {
		t.Errorf("category = %q, want Drama", reply.Category)
	}
	if reply.Count == nil || *reply.Count != 1 {
		t.Errorf("count = %v, want 1", reply.Count)
	}
}

func TestSearchByNameExact(t *testing.T) {
	h := newTestHandler(t, testsupport.SeedRecords())

	rr, reply := doRequest(t, h, http.MethodGet, "/api/media/search?name=pulp+fiction", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	records, err := reply.Records()
	if err != nil {
		t.Fatalf("decode records: %v", err)
	}
	if len(records) != 1 || records[0].Name != "Pulp Fiction" {
		t.Errorf("records = %+v", records)
	}
}

func TestSearchBySubstring(t *testing.T) {
	h := newTestHandler(t, testsupport.SeedRecords())

	rr, reply := doRequest(t, h, http.MethodGet, "/api/media/search?search=coppola", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	records, err := reply.Records()
	if err != nil {
		t.Fatalf("decode records: %v", err)
	}
	if len(records) != 1 || records[0].Name != "The Godfather" {
		t.Errorf("records = %+v", records)
	}
}

func TestSearchWithoutParameter(t *testing.T) {
	h := newTestHandler(t, testsupport.SeedRecords())

	rr, reply := doRequest(t, h, http.MethodGet, "/api/media/search", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if reply.Success || reply.Error != "Name parameter is required" {
		t.Errorf("reply = %+v", reply)
	}
}

func TestGetByID(t *testing.T) {
	h := newTestHandler(t, testsupport.SeedRecords())

	rr, reply := doRequest(t, h, http.MethodGet, "/api/media/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	rec, err := reply.Record()
	if err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.ID != 1 || rec.Name != "The Shawshank Redemption" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Director != "Frank Darabont" || rec.Year != "1994" {
		t.Errorf("aliases not normalized in response: %+v", rec)
	}
}

func TestGetUnknownID(t *testing.T) {
	h := newTestHandler(t, testsupport.SeedRecords())

	rr, reply := doRequest(t, h, http.MethodGet, "/api/media/99", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if reply.Error != "Media not found" {
		t.Errorf("error = %q", reply.Error)
	}
}

func TestGetNonIntegerID(t *testing.T) {
	h := newTestHandler(t, testsupport.SeedRecords())

	rr, reply := doRequest(t, h, http.MethodGet, "/api/media/abc", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if reply.Error != "Endpoint not found" {
		t.Errorf("error = %q", reply.Error)
	}
}

func TestUnknownRouteEnvelope(t *testing.T) {
	h := newTestHandler(t, nil)

	rr, reply := doRequest(t, h, http.MethodGet, "/api/nope", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if reply.Success || reply.Error != "Endpoint not found" {
		t.Errorf("reply = %+v", reply)
	}
}

func TestCreateDeleteLifecycle(t *testing.T) {
	h := newTestHandler(t, testsupport.SeedRecords())

	body := `{"name": "Dune", "director": "Denis Villeneuve", "year": "2021", "category": "Sci-Fi", "runtime": 155}`
	rr, reply := doRequest(t, h, http.MethodPost, "/api/films", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", rr.Code, reply.Error)
	}
	if reply.Message != "Media created successfully" {
		t.Errorf("message = %q", reply.Message)
	}
	created, err := reply.Record()
	if err != nil {
		t.Fatalf("decode created record: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("created id = %d, want 4", created.ID)
	}
	if created.CreatedAt == "" {
		t.Error("created_at missing from response")
	}

	_, list := doRequest(t, h, http.MethodGet, "/api/media", "")
	if list.Count == nil || *list.Count != 4 {
		t.Fatalf("count after create = %v, want 4", list.Count)
	}

	rr, reply = doRequest(t, h, http.MethodDelete, "/api/media/4", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rr.Code)
	}
	if reply.Message != "Media deleted successfully" {
		t.Errorf("message = %q", reply.Message)
	}
	if reply.DeletedMedia == nil || reply.DeletedMedia.ID != 4 {
		t.Errorf("deleted_media = %+v", reply.DeletedMedia)
	}

	_, list = doRequest(t, h, http.MethodGet, "/api/media", "")
	if list.Count == nil || *list.Count != 3 {
		t.Fatalf("count after delete = %v, want 3", list.Count)
	}
	records, err := list.Records()
	if err != nil {
		t.Fatalf("decode records: %v", err)
	}
	for i, want := range []int64{1, 2, 3} {
		if records[i].ID != want {
			t.Errorf("records[%d].ID = %d, want %d", i, records[i].ID, want)
		}
	}
}

func TestCreateAcceptsLegacyAliases(t *testing.T) {
	h := newTestHandler(t, nil)

	body := `{"name": "Metropolis", "author": "Fritz Lang", "publication_date": "1927", "category": "Sci-Fi"}`
	rr, reply := doRequest(t, h, http.MethodPost, "/api/media", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rr.Code, reply.Error)
	}
	rec, err := reply.Record()
	if err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.Director != "Fritz Lang" || rec.Year != "1927" {
		t.Errorf("aliases not folded on create: %+v", rec)
	}
}

func TestCreateMissingField(t *testing.T) {
	h := newTestHandler(t, nil)

	rr, reply := doRequest(t, h, http.MethodPost, "/api/films", `{"name": "No Category"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if reply.Error != "Missing required field: category" {
		t.Errorf("error = %q", reply.Error)
	}
}

func TestCreateInvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil)

	rr, reply := doRequest(t, h, http.MethodPost, "/api/films", `{"name": `)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if reply.Error != "Invalid JSON body" {
		t.Errorf("error = %q", reply.Error)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	h := newTestHandler(t, testsupport.SeedRecords())

	rr, reply := doRequest(t, h, http.MethodDelete, "/api/films/99", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if reply.Error != "Media not found" {
		t.Errorf("error = %q", reply.Error)
	}

	_, list := doRequest(t, h, http.MethodGet, "/api/media", "")
	if list.Count == nil || *list.Count != 3 {
		t.Errorf("count after failed delete = %v, want unchanged 3", list.Count)
	}
}
