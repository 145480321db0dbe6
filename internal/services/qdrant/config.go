// File: internal/services/qdrant/config.go
package qdrant

import (
	"errors"
	"strings"
	"time"
)

type Config struct {
	// Connection settings
	URL        string // Qdrant base URL, e.g. http://localhost:6333
	APIKey     string // Optional; empty for a local unauthenticated instance
	Collection string // Collection name

	// Operation settings
	Timeout time.Duration

	// Index-build settings (used by the indexer job only)
	VectorSize uint64
	BatchSize  int
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:    30 * time.Second,
		VectorSize: 1536, // text-embedding-ada-002
		BatchSize:  64,
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return errors.New("qdrant URL is required")
	}
	if strings.TrimSpace(c.Collection) == "" {
		return errors.New("qdrant collection name is required")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}
