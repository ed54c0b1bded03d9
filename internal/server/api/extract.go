// Package api provides HTTP API handlers for the Mudra feature
// extraction service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/feature"
	"github.com/ayusman/mudra/internal/store"
)

// ExtractHandler handles HTTP requests that convert a hand pose into a
// feature vector.
type ExtractHandler struct {
	extractor *feature.Extractor
	store     *store.Store
}

// NewExtractHandler creates a new ExtractHandler. The store is optional;
// when present every produced vector is archived.
func NewExtractHandler(e *feature.Extractor, s *store.Store) *ExtractHandler {
	return &ExtractHandler{extractor: e, store: s}
}

// Request and response types

type extractRequest struct {
	Points     []detector.Point3D `json:"points"`
	Handedness string             `json:"handedness,omitempty"`
}

type extractResponse struct {
	ID        string    `json:"id"`
	Features  []float64 `json:"features"`
	Timestamp int64     `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// ServeHTTP implements the http.Handler interface.
func (h *ExtractHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	features, err := h.extractor.Extract(req.Points)
	if err != nil {
		var shapeErr *feature.ShapeError
		if errors.As(err, &shapeErr) {
			writeError(w, http.StatusBadRequest, shapeErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	id := uuid.NewString()

	if h.store != nil {
		record := &store.Extraction{
			ID:         id,
			Handedness: req.Handedness,
			Features:   features,
		}
		if err := h.store.Extractions().Create(record); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to archive extraction")
			return
		}
	}

	writeJSON(w, http.StatusOK, extractResponse{
		ID:        id,
		Features:  features,
		Timestamp: time.Now().UnixMilli(),
	})
}
