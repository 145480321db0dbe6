// File: internal/services/indexer/service.go
package indexer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pharmago/pharmago/internal/services"
	"github.com/pharmago/pharmago/internal/services/ai"
	"github.com/pharmago/pharmago/internal/services/qdrant"
)

const defaultBatchSize = 64

// Service builds the medication knowledge index: PDF text in, embedded
// chunks in Qdrant out. The collection is destroyed and rebuilt on every
// run, so a failed run must be rerun before answers work again.
type Service struct {
	embedder  ai.EmbeddingProvider
	index     qdrant.IndexProvider
	batchSize int
	logger    services.Logger
}

func NewService(embedder ai.EmbeddingProvider, index qdrant.IndexProvider, batchSize int, logger services.Logger) (*Service, error) {
	if embedder == nil {
		return nil, errors.New("embedding provider is required")
	}
	if index == nil {
		return nil, errors.New("index provider is required")
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	return &Service{
		embedder:  embedder,
		index:     index,
		batchSize: batchSize,
		logger:    logger,
	}, nil
}

// IndexPDF extracts, chunks, embeds and uploads one document.
func (s *Service) IndexPDF(ctx context.Context, pdfPath string) (int, error) {
	source := filepath.Base(pdfPath)

	pages, err := ExtractPages(pdfPath)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Extracted PDF text", "source", source, "pages", len(pages))

	points := s.buildPoints(pages, source)
	if len(points) == 0 {
		return 0, fmt.Errorf("no chunks produced from %s", pdfPath)
	}
	s.logger.Info("Split document into chunks", "chunks", len(points))

	if err := s.index.RecreateCollection(ctx); err != nil {
		return 0, err
	}

	indexed := 0
	for start := 0; start < len(points); start += s.batchSize {
		end := start + s.batchSize
		if end > len(points) {
			end = len(points)
		}
		batch := points[start:end]

		if err := s.embedBatch(ctx, batch); err != nil {
			return indexed, err
		}
		if err := s.index.UpsertPoints(ctx, batch); err != nil {
			return indexed, err
		}
		indexed += len(batch)
		s.logger.Info("Indexed chunk batch", "indexed", indexed, "total", len(points))
	}

	return indexed, nil
}

func (s *Service) buildPoints(pages []PageText, source string) []qdrant.Point {
	var points []qdrant.Point
	for _, page := range pages {
		for _, chunk := range SplitText(page.Text, DefaultChunkSize, DefaultChunkOverlap) {
			points = append(points, qdrant.Point{
				ID: uuid.NewString(),
				Payload: map[string]interface{}{
					"page_content": chunk,
					"source":       source,
					"page":         page.Page,
				},
			})
		}
	}
	return points
}

func (s *Service) embedBatch(ctx context.Context, batch []qdrant.Point) error {
	texts := make([]string, len(batch))
	for i, p := range batch {
		texts[i] = p.Payload["page_content"].(string)
	}

	vectors, err := s.embedder.CreateEmbeddings(ctx, texts)
	if err != nil {
		return err
	}
	if len(vectors) != len(batch) {
		return fmt.Errorf("embedding count mismatch: got %d for %d chunks", len(vectors), len(batch))
	}
	for i := range batch {
		batch[i].Values = vectors[i]
	}
	return nil
}
