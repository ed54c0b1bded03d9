package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// defaultListLimit bounds /api/extractions responses unless the caller
// asks for a specific limit.
const defaultListLimit = 100

// ExtractionsHandler handles HTTP requests for archived extraction
// results.
type ExtractionsHandler struct {
	store *store.Store
}

// NewExtractionsHandler creates a new ExtractionsHandler with the given store.
func NewExtractionsHandler(s *store.Store) *ExtractionsHandler {
	return &ExtractionsHandler{store: s}
}

type listExtractionsResponse struct {
	Extractions []store.Extraction `json:"extractions"`
}

// ServeHTTP implements the http.Handler interface and routes requests
// to appropriate methods.
func (h *ExtractionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/extractions or /api/extractions/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/extractions")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/extractions
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	// Item endpoint: /api/extractions/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// list handles GET /api/extractions and returns recent extractions.
func (h *ExtractionsHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	extractions, err := h.store.Extractions().List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list extractions")
		return
	}

	if extractions == nil {
		extractions = []store.Extraction{}
	}

	writeJSON(w, http.StatusOK, listExtractionsResponse{Extractions: extractions})
}

// get handles GET /api/extractions/{id}.
func (h *ExtractionsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	extraction, err := h.store.Extractions().Get(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "extraction not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load extraction")
		return
	}

	writeJSON(w, http.StatusOK, extraction)
}

// delete handles DELETE /api/extractions/{id}.
func (h *ExtractionsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Extractions().Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "extraction not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete extraction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
