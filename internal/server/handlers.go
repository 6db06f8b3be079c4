package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"filmbox/internal/api"
	"filmbox/internal/catalog"
	"filmbox/internal/logging"
)

const (
	msgEndpointNotFound = "Endpoint not found"
	msgInternalError    = "Internal server error"
	msgMediaNotFound    = "Media not found"
	msgNameRequired     = "Name parameter is required"
	msgSaveFailed       = "Failed to save media"
	msgDeleteFailed     = "Failed to save changes"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, api.Envelope{Success: true, Message: "ok"})
}

// handleList serves the full store, optionally narrowed by the
// category, search, or name query parameters.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		records []catalog.Record
		err     error
	)
	switch {
	case query.Get("search") != "":
		records, err = s.store.Search(r.Context(), query.Get("search"))
	case query.Get("name") != "":
		records, err = s.store.FindByName(r.Context(), query.Get("name"))
	case query.Get("category") != "" && !strings.EqualFold(query.Get("category"), "All"):
		records, err = s.store.ByCategory(r.Context(), query.Get("category"))
	default:
		records, err = s.store.List(r.Context())
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeRecords(w, records, "")
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	records, err := s.store.ByCategory(r.Context(), category)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeRecords(w, records, category)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		records []catalog.Record
		err     error
	)
	switch {
	case query.Get("name") != "":
		records, err = s.store.FindByName(r.Context(), query.Get("name"))
	case query.Get("search") != "":
		records, err = s.store.Search(r.Context(), query.Get("search"))
	default:
		s.writeError(w, http.StatusBadRequest, msgNameRequired)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeRecords(w, records, "")
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// The id segment only matches integers in the contract.
		s.writeError(w, http.StatusNotFound, msgEndpointNotFound)
		return
	}

	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, msgMediaNotFound)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.Envelope{Success: true, Data: rec})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft catalog.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	rec, err := s.store.Create(r.Context(), draft)
	if err != nil {
		if errors.Is(err, catalog.ErrValidation) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("create failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	s.writeJSON(w, http.StatusCreated, api.Envelope{
		Success: true,
		Data:    rec,
		Message: "Media created successfully",
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.store.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, msgMediaNotFound)
			return
		}
		s.logger.Error("delete failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, msgDeleteFailed)
		return
	}

	s.writeJSON(w, http.StatusOK, api.Envelope{
		Success:      true,
		Message:      "Media deleted successfully",
		DeletedMedia: rec,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusNotFound, msgEndpointNotFound)
}

func (s *Server) writeRecords(w http.ResponseWriter, records []catalog.Record, category string) {
	if records == nil {
		records = []catalog.Record{}
	}
	count := len(records)
	s.writeJSON(w, http.StatusOK, api.Envelope{
		Success:  true,
		Data:     records,
		Count:    &count,
		Category: category,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload api.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.Envelope{Success: false, Error: message})
}
