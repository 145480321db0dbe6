// File: internal/services/qdrant/interface.go
package qdrant

import (
	"context"

	"github.com/qdrant/go-client/qdrant"
)

// Point is one knowledge chunk to be written into the collection.
type Point struct {
	ID      string
	Values  []float32
	Payload map[string]interface{}
}

// SearchProvider handles nearest-neighbor queries at answer time.
type SearchProvider interface {
	QuerySimilar(ctx context.Context, embedding []float32, topK int) ([]*qdrant.ScoredPoint, error)
	HealthCheck(ctx context.Context) error
}

// IndexProvider handles the destroy-and-rebuild index lifecycle used by the
// one-shot indexer job.
type IndexProvider interface {
	RecreateCollection(ctx context.Context) error
	UpsertPoints(ctx context.Context, points []Point) error
}

// Service combines all Qdrant capabilities.
type Service interface {
	SearchProvider
	IndexProvider
}

// Logger interface for Qdrant operations
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}
