// File: internal/services/rag/service.go
package rag

import (
	"context"
	"strings"

	"github.com/pharmago/pharmago/internal/services/ai"
	"github.com/pharmago/pharmago/internal/services/qdrant"
)

// Service answers medication questions by retrieval-augmented generation:
// embed the question, fetch the nearest chunks from the knowledge index,
// draft an answer with the chat model, then run the draft through a second
// model call that classifies it as educational or prescription-like.
type Service struct {
	config *Config
	ai     ai.AIProvider
	search qdrant.SearchProvider
	logger Logger
}

func NewService(config *Config, aiProvider ai.AIProvider, search qdrant.SearchProvider, logger Logger) (*Service, error) {
	if aiProvider == nil {
		return nil, NewValidationError("constructor", "AI provider is required")
	}
	if search == nil {
		return nil, NewValidationError("constructor", "search provider is required")
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, NewValidationError("config", err.Error())
	}

	return &Service{
		config: config,
		ai:     aiProvider,
		search: search,
		logger: logger,
	}, nil
}

// Answer runs the pipeline for one question. Steps are strictly sequential
// and nothing is retried; each provider call carries its own bounded
// timeout, so a hung provider fails the request instead of wedging it.
func (s *Service) Answer(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", NewValidationError("answer", "query cannot be empty")
	}

	embedding, err := s.ai.CreateEmbedding(ctx, query)
	if err != nil {
		return "", newStepError(ErrTypeEmbedding, "answer", "could not embed query", err)
	}

	matches, err := s.search.QuerySimilar(ctx, embedding, s.config.RetrievalTopK)
	if err != nil {
		return "", newStepError(ErrTypeSearch, "answer", "similarity search failed", err)
	}

	chunks := extractChunkTexts(matches)
	s.logger.Info("retrieved knowledge chunks", "requested", s.config.RetrievalTopK, "usable", len(chunks))

	draft, err := s.ai.GetCompletion(ctx, buildAnswerPrompt(chunks, query))
	if err != nil {
		return "", newStepError(ErrTypeCompletion, "answer", "completion failed", err)
	}

	verdict, err := s.moderate(ctx, query, draft)
	if err != nil {
		return "", err
	}
	if verdict == ClassificationPrescriptionLike {
		s.logger.Warn("prescription-like answer blocked", "query_length", len(query))
	}

	return finalizeAnswer(draft, verdict), nil
}

// moderate runs the second LLM call whose sole job is binary classification
// of the draft answer.
func (s *Service) moderate(ctx context.Context, query, draft string) (Classification, error) {
	raw, err := s.ai.GetCompletion(ctx, buildModerationPrompt(query, draft))
	if err != nil {
		return ClassificationUnknown, newStepError(ErrTypeModeration, "moderate", "moderation call failed", err)
	}

	verdict := parseClassification(raw)
	if verdict == ClassificationUnknown {
		s.logger.Warn("moderation verdict unrecognized", "raw", strings.TrimSpace(raw))
	}
	return verdict, nil
}

// HealthCheck reports whether the knowledge index is reachable.
func (s *Service) HealthCheck(ctx context.Context) error {
	return s.search.HealthCheck(ctx)
}
