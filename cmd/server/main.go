// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/pharmago/pharmago/internal/config"
	"github.com/pharmago/pharmago/internal/domain"
	"github.com/pharmago/pharmago/internal/handlers"
	"github.com/pharmago/pharmago/internal/middleware"
	historyrepo "github.com/pharmago/pharmago/internal/repository/history"
	pharmacyrepo "github.com/pharmago/pharmago/internal/repository/pharmacy"
	transcriptrepo "github.com/pharmago/pharmago/internal/repository/transcript"
	userrepo "github.com/pharmago/pharmago/internal/repository/user"
	"github.com/pharmago/pharmago/internal/services"
	"github.com/pharmago/pharmago/internal/services/ai"
	"github.com/pharmago/pharmago/internal/services/qdrant"
	"github.com/pharmago/pharmago/internal/services/rag"
	"github.com/pharmago/pharmago/internal/services/router"
	"github.com/pharmago/pharmago/internal/services/session"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("pharmago-server")

	pharmacyDB, err := gorm.Open(sqlite.Open(cfg.PharmacyDBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Pharmacy DB Error: %v", err)
	}
	if err := pharmacyDB.AutoMigrate(&domain.Pharmacy{}, &domain.Transcript{}); err != nil {
		log.Fatalf("Pharmacy DB Migration Error: %v", err)
	}

	historyDB, err := gorm.Open(sqlite.Open(cfg.HistoryDBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("History DB Error: %v", err)
	}
	if err := historyDB.AutoMigrate(&domain.User{}, &domain.HistoryEntry{}); err != nil {
		log.Fatalf("History DB Migration Error: %v", err)
	}

	// --- Repositories ---
	pharmacies := pharmacyrepo.NewGormPharmacyRepository(pharmacyDB)
	users := userrepo.NewGormUserRepository(historyDB)
	historyLog := historyrepo.NewGormHistoryRepository(historyDB)
	transcripts := transcriptrepo.NewGormTranscriptRepository(pharmacyDB)

	// --- Services ---
	aiProvider := ai.NewOpenAIProvider(&ai.Config{
		APIKey:         cfg.OpenAIAPIKey,
		BaseURL:        cfg.OpenAIBaseURL,
		EmbeddingModel: cfg.EmbeddingModelName,
		ChatModel:      cfg.ChatModelName,
		Timeout:        cfg.AITimeout,
	})

	qdrantService, err := qdrant.NewClientService(&qdrant.Config{
		URL:        cfg.QdrantURL,
		APIKey:     cfg.QdrantAPIKey,
		Collection: cfg.QdrantCollection,
		Timeout:    30 * time.Second,
	}, services.NewLogger("qdrant"))
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Qdrant service: %v", err)
	}

	ragService, err := rag.NewService(
		&rag.Config{RetrievalTopK: cfg.RetrievalTopK},
		aiProvider,
		qdrantService,
		services.NewLogger("rag"),
	)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize RAG service: %v", err)
	}

	chatRouter, err := router.NewRouter(users, historyLog, pharmacies, ragService, services.NewLogger("router"))
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize chat router: %v", err)
	}

	sessions := session.NewRegistry(cfg.SessionTTL, services.NewLogger("sessions"))
	sessions.Start()
	defer sessions.Stop()

	// --- Handlers ---
	directoryHandler := handlers.NewDirectoryHandler(pharmacies)
	chatHandler := handlers.NewChatHandler(chatRouter, sessions, historyLog, transcripts, services.NewLogger("chat"))
	healthHandler := handlers.NewHealthHandler(pharmacyDB, historyDB, ragService)

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/get_regions", directoryHandler.GetRegions).Methods("GET")
	r.HandleFunc("/get_comunas/{region}", directoryHandler.GetCommunes).Methods("GET")
	r.HandleFunc("/search_farmacias/{region}/{comuna}", directoryHandler.SearchPharmacies).Methods("GET")

	r.HandleFunc("/chat", chatHandler.HandleChat).Methods("POST")
	r.HandleFunc("/chat/history", chatHandler.GetHistory).Methods("GET")
	r.HandleFunc("/chat/clear", chatHandler.HandleClear).Methods("POST")

	r.HandleFunc("/api/health", healthHandler.HandleHealth).Methods("GET")

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	logger.Info("Server starting", "port", cfg.ServerPort)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down server gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err.Error())
	}
	logger.Info("Server stopped")
}
