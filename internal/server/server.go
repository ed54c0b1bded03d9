// Package server provides the HTTP surface for the Mudra feature
// extraction service.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ayusman/mudra/internal/feature"
	"github.com/ayusman/mudra/internal/server/api"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	Store     *store.Store
	Extractor *feature.Extractor
}

// Server represents the HTTP server for the Mudra service.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
// A nil Extractor is replaced with a default one; the Store is
// optional and only enables the archive endpoints.
func New(config Config) *Server {
	if config.Extractor == nil {
		config.Extractor = feature.NewExtractor()
	}

	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	extractHandler := api.NewExtractHandler(s.config.Extractor, s.config.Store)
	s.mux.Handle("/api/extract", extractHandler)

	streamHandler := NewStreamHandler(s.config.Extractor)
	s.mux.Handle("/api/stream", streamHandler)

	// Register archive endpoints if a Store is configured
	if s.config.Store != nil {
		extractionsHandler := api.NewExtractionsHandler(s.config.Store)

		extractionsRouter := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Routes both /api/extractions and /api/extractions/{id}
			if strings.HasPrefix(r.URL.Path, "/api/extractions") {
				extractionsHandler.ServeHTTP(w, r)
				return
			}
			http.NotFound(w, r)
		})

		s.mux.Handle("/api/extractions", extractionsRouter)
		s.mux.Handle("/api/extractions/", extractionsRouter)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
