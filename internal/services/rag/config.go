// File: internal/services/rag/config.go
package rag

import "fmt"

type Config struct {
	// Number of similar chunks to retrieve per question.
	RetrievalTopK int
}

func (c *Config) Validate() error {
	if c.RetrievalTopK <= 0 {
		return fmt.Errorf("retrieval_top_k must be positive")
	}
	if c.RetrievalTopK > 20 {
		return fmt.Errorf("retrieval_top_k cannot exceed 20")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		RetrievalTopK: 3,
	}
}
