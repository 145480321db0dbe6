// File: internal/handlers/health_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"
)

// HealthChecker reports whether the medication answer pipeline can reach
// its backing services.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler reports service health: both databases plus the medication
// pipeline.
type HealthHandler struct {
	PharmacyDB *gorm.DB
	HistoryDB  *gorm.DB
	RAG        HealthChecker
}

func NewHealthHandler(pharmacyDB, historyDB *gorm.DB, rag HealthChecker) *HealthHandler {
	return &HealthHandler{
		PharmacyDB: pharmacyDB,
		HistoryDB:  historyDB,
		RAG:        rag,
	}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := pingDB(h.PharmacyDB); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "pharmacy database unreachable",
		})
		return
	}
	if err := pingDB(h.HistoryDB); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "history database unreachable",
		})
		return
	}

	// The chat endpoints keep working without the vector store, so a RAG
	// failure degrades the report instead of failing it.
	ragStatus := "loaded"
	if h.RAG == nil {
		ragStatus = "not loaded"
	} else if err := h.RAG.HealthCheck(r.Context()); err != nil {
		ragStatus = "unavailable"
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":     "ok",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"database":   "connected",
		"rag_system": ragStatus,
	})
}

func pingDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
