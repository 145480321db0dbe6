// File: internal/handlers/directory_handler.go
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pharmago/pharmago/internal/domain"
	"github.com/pharmago/pharmago/internal/repository/pharmacy"
)

// DirectoryHandler serves the region/commune browse endpoints backed by the
// pharmacy directory table.
type DirectoryHandler struct {
	Pharmacies pharmacy.PharmacyRepository
}

func NewDirectoryHandler(repo pharmacy.PharmacyRepository) *DirectoryHandler {
	return &DirectoryHandler{Pharmacies: repo}
}

// GetRegions lists the distinct region names present in the directory.
func (h *DirectoryHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.Pharmacies.ListRegions(r.Context())
	if err != nil {
		writeError(w, "Could not retrieve regions", http.StatusInternalServerError)
		return
	}
	if regions == nil {
		regions = []string{}
	}
	writeJSON(w, http.StatusOK, regions)
}

// GetCommunes lists the communes of one region.
func (h *DirectoryHandler) GetCommunes(w http.ResponseWriter, r *http.Request) {
	region := mux.Vars(r)["region"]
	if region == "" {
		writeError(w, "Region is required", http.StatusBadRequest)
		return
	}

	communes, err := h.Pharmacies.ListCommunes(r.Context(), region)
	if err != nil {
		writeError(w, "Could not retrieve communes", http.StatusInternalServerError)
		return
	}
	if communes == nil {
		communes = []string{}
	}
	writeJSON(w, http.StatusOK, communes)
}

type pharmacyResult struct {
	Name     string `json:"local_nombre"`
	Locality string `json:"localidad_nombre"`
	Address  string `json:"local_direccion"`
	OnDuty   bool   `json:"de_turno"`
	MapURL   string `json:"url_direccion"`
}

// SearchPharmacies lists the pharmacies of one region/commune pair, on-duty
// ones first.
func (h *DirectoryHandler) SearchPharmacies(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	region, commune := vars["region"], vars["comuna"]
	if region == "" || commune == "" {
		writeError(w, "Region and commune are required", http.StatusBadRequest)
		return
	}

	rows, err := h.Pharmacies.FindByRegionAndCommune(r.Context(), region, commune)
	if err != nil {
		writeError(w, "Could not search pharmacies", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toPharmacyResults(rows))
}

func toPharmacyResults(rows []domain.Pharmacy) []pharmacyResult {
	results := make([]pharmacyResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, pharmacyResult{
			Name:     row.Name,
			Locality: row.Locality,
			Address:  row.Address,
			OnDuty:   row.OnDuty,
			MapURL:   row.MapURL,
		})
	}
	return results
}
