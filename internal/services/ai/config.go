// File: internal/services/ai/config.go
package ai

import (
	"fmt"
	"time"
)

type Config struct {
	// Provider credentials. BaseURL is optional and only set when talking
	// to an OpenAI-compatible gateway.
	APIKey  string
	BaseURL string

	// Models
	EmbeddingModel string
	ChatModel      string

	// Every provider call runs under this bound; the reference had
	// unbounded waits, which is an availability bug rather than a choice.
	Timeout time.Duration

	// Model parameters. Kept at zero temperature for medical answers.
	Temperature float32
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.EmbeddingModel == "" {
		return fmt.Errorf("EMBEDDING_MODEL_NAME is required")
	}
	if c.ChatModel == "" {
		return fmt.Errorf("CHAT_MODEL_NAME is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		EmbeddingModel: "text-embedding-ada-002",
		ChatModel:      "gpt-3.5-turbo",
		Timeout:        60 * time.Second,
		Temperature:    0,
	}
}
