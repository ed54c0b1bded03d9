package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayusman/mudra/internal/store"
)

// seedExtraction archives one record with the given id.
func seedExtraction(t *testing.T, s *store.Store, id string) {
	t.Helper()

	features := make([]float64, 31)
	for i := range features {
		features[i] = float64(i)
	}

	e := &store.Extraction{ID: id, Handedness: "Left", Features: features}
	if err := s.Extractions().Create(e); err != nil {
		t.Fatalf("failed to seed extraction %s: %v", id, err)
	}
}

func TestExtractionsHandler_List(t *testing.T) {
	s := newTestStore(t)
	handler := NewExtractionsHandler(s)

	seedExtraction(t, s, "ext-1")
	seedExtraction(t, s, "ext-2")

	req := httptest.NewRequest(http.MethodGet, "/api/extractions", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp listExtractionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Extractions) != 2 {
		t.Errorf("got %d extractions, want 2", len(resp.Extractions))
	}
}

func TestExtractionsHandler_ListEmpty(t *testing.T) {
	s := newTestStore(t)
	handler := NewExtractionsHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/extractions", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp listExtractionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Extractions == nil {
		t.Error("expected empty array, not null")
	}
}

func TestExtractionsHandler_ListLimit(t *testing.T) {
	s := newTestStore(t)
	handler := NewExtractionsHandler(s)

	for _, id := range []string{"a", "b", "c"} {
		seedExtraction(t, s, id)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/extractions?limit=2", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	var resp listExtractionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Extractions) != 2 {
		t.Errorf("got %d extractions, want 2", len(resp.Extractions))
	}
}

func TestExtractionsHandler_ListBadLimit(t *testing.T) {
	s := newTestStore(t)
	handler := NewExtractionsHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/extractions?limit=banana", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestExtractionsHandler_Get(t *testing.T) {
	s := newTestStore(t)
	handler := NewExtractionsHandler(s)

	seedExtraction(t, s, "ext-1")

	req := httptest.NewRequest(http.MethodGet, "/api/extractions/ext-1", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp store.Extraction
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.ID != "ext-1" || len(resp.Features) != 31 {
		t.Errorf("unexpected extraction: id=%s, %d features", resp.ID, len(resp.Features))
	}
}

func TestExtractionsHandler_GetNotFound(t *testing.T) {
	s := newTestStore(t)
	handler := NewExtractionsHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/extractions/missing", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestExtractionsHandler_Delete(t *testing.T) {
	s := newTestStore(t)
	handler := NewExtractionsHandler(s)

	seedExtraction(t, s, "ext-1")

	req := httptest.NewRequest(http.MethodDelete, "/api/extractions/ext-1", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	if _, err := s.Extractions().Get("ext-1"); err == nil {
		t.Error("extraction should be gone after delete")
	}
}

func TestExtractionsHandler_DeleteNotFound(t *testing.T) {
	s := newTestStore(t)
	handler := NewExtractionsHandler(s)

	req := httptest.NewRequest(http.MethodDelete, "/api/extractions/missing", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestExtractionsHandler_MethodNotAllowed(t *testing.T) {
	s := newTestStore(t)
	handler := NewExtractionsHandler(s)

	req := httptest.NewRequest(http.MethodPost, "/api/extractions", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
