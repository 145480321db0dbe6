// File: cmd/indexer/main.go
//
// One-shot job that rebuilds the medication knowledge index from a PDF.
// The Qdrant collection is recreated from scratch on every run.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/pharmago/pharmago/internal/config"
	"github.com/pharmago/pharmago/internal/services"
	"github.com/pharmago/pharmago/internal/services/ai"
	"github.com/pharmago/pharmago/internal/services/indexer"
	"github.com/pharmago/pharmago/internal/services/qdrant"
)

func main() {
	pdfPath := flag.String("pdf", "Vademecum_5ed_Medicamentos.pdf", "path to the medication reference PDF")
	batchSize := flag.Int("batch", 64, "embedding/upsert batch size")
	flag.Parse()

	cfg := config.Load()
	logger := services.NewLogger("pharmago-indexer")

	embedder := ai.NewOpenAIProvider(&ai.Config{
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
		Timeout:    60 * time.Second,
		VectorSize: 1536, // text-embedding-ada-002
		BatchSize:  *batchSize,
	}, services.NewLogger("qdrant"))
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Qdrant service: %v", err)
	}

	svc, err := indexer.NewService(embedder, qdrantService, *batchSize, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize indexer: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Minute)
	defer cancel()

	indexed, err := svc.IndexPDF(ctx, *pdfPath)
	if err != nil {
		log.Fatalf("Indexing failed after %d chunks: %v", indexed, err)
	}

	logger.Info("Indexing completed", "chunks", indexed, "collection", cfg.QdrantCollection)
}
