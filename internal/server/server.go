// Package server exposes the catalog store over the REST contract.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"filmbox/internal/config"
	"filmbox/internal/logging"
	"filmbox/internal/store"
)

// Server serves the catalog REST API.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store

	listener net.Listener
	server   *http.Server
}

// New constructs a server bound to the configured address.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) (*Server, error) {
	if cfg == nil || st == nil {
		return nil, errors.New("server requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	s := &Server{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "server"),
		store:  st,
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler builds the route tree. Exposed so tests can drive the full
// middleware stack through httptest.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(s.recoverer)
	r.Use(metricsMiddleware)

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleNotFound)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		// Both route families from the historical variants stay valid.
		r.Get("/films", s.handleList)
		r.Post("/films", s.handleCreate)
		r.Delete("/films/{id}", s.handleDelete)

		r.Get("/media", s.handleList)
		r.Post("/media", s.handleCreate)
		r.Get("/media/search", s.handleSearch)
		r.Get("/media/category/{category}", s.handleCategory)
		r.Get("/media/{id}", s.handleGet)
		r.Delete("/media/{id}", s.handleDelete)
	})

	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Start begins serving and shuts the server down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Server.Bind)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Server.Bind, err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("catalog service listening",
		logging.String("address", listener.Addr().String()),
		logging.String("store", s.store.Path()))
	return nil
}

// Addr returns the bound listen address, or empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down immediately.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}
