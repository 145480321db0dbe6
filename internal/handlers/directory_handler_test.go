// File: internal/handlers/directory_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/pharmago/pharmago/internal/domain"
)

type fakeDirectoryRepo struct {
	regions  []string
	communes []string
	rows     []domain.Pharmacy
	err      error
}

func (f *fakeDirectoryRepo) ReplaceAll(ctx context.Context, rows []domain.Pharmacy) error {
	return nil
}
func (f *fakeDirectoryRepo) FindByCommune(ctx context.Context, commune string, onDutyOnly bool) ([]domain.Pharmacy, error) {
	return nil, nil
}
func (f *fakeDirectoryRepo) ListRegions(ctx context.Context) ([]string, error) {
	return f.regions, f.err
}
func (f *fakeDirectoryRepo) ListCommunes(ctx context.Context, region string) ([]string, error) {
	return f.communes, f.err
}
func (f *fakeDirectoryRepo) FindByRegionAndCommune(ctx context.Context, region, commune string) ([]domain.Pharmacy, error) {
	return f.rows, f.err
}
func (f *fakeDirectoryRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func newDirectoryRouter(h *DirectoryHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/get_regions", h.GetRegions).Methods("GET")
	r.HandleFunc("/get_comunas/{region}", h.GetCommunes).Methods("GET")
	r.HandleFunc("/search_farmacias/{region}/{comuna}", h.SearchPharmacies).Methods("GET")
	return r
}

func TestGetRegions(t *testing.T) {
	h := NewDirectoryHandler(&fakeDirectoryRepo{regions: []string{"Valparaíso"}})
	rec := httptest.NewRecorder()
	newDirectoryRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_regions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var regions []string
	if err := json.Unmarshal(rec.Body.Bytes(), &regions); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(regions) != 1 || regions[0] != "Valparaíso" {
		t.Errorf("unexpected regions: %v", regions)
	}
}

func TestGetRegionsEmptyDirectory(t *testing.T) {
	h := NewDirectoryHandler(&fakeDirectoryRepo{})
	rec := httptest.NewRecorder()
	newDirectoryRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_regions", nil))

	if rec.Body.String() != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", rec.Body.String())
	}
}

func TestGetRegionsError(t *testing.T) {
	h := NewDirectoryHandler(&fakeDirectoryRepo{err: errors.New("db down")})
	rec := httptest.NewRecorder()
	newDirectoryRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_regions", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestSearchPharmacies(t *testing.T) {
	h := NewDirectoryHandler(&fakeDirectoryRepo{rows: []domain.Pharmacy{
		{Name: "Farmacia Uno", Locality: "Centro", Address: "Calle 1", OnDuty: true, MapURL: "https://maps.example/1"},
	}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search_farmacias/Valpara%C3%ADso/quillota", nil)
	newDirectoryRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var results []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0]["local_nombre"] != "Farmacia Uno" {
		t.Errorf("unexpected payload: %v", results[0])
	}
	if results[0]["de_turno"] != true {
		t.Error("on-duty flag missing from payload")
	}
}
