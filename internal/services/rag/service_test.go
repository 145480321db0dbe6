// File: internal/services/rag/service_test.go
package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	qdrantpb "github.com/qdrant/go-client/qdrant"

	"github.com/pharmago/pharmago/internal/services"
	"github.com/pharmago/pharmago/internal/services/qdrant"
)

type fakeAIProvider struct {
	embedding   []float32
	embedErr    error
	completions []string
	completeErr error
	prompts     []string
}

func (f *fakeAIProvider) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return f.embedding, nil
}

func (f *fakeAIProvider) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = f.embedding
	}
	return out, nil
}

func (f *fakeAIProvider) GetCompletion(ctx context.Context, prompt string) (string, error) {
	if f.completeErr != nil {
		return "", f.completeErr
	}
	f.prompts = append(f.prompts, prompt)
	if len(f.completions) == 0 {
		return "", errors.New("no scripted completion")
	}
	next := f.completions[0]
	f.completions = f.completions[1:]
	return next, nil
}

type fakeSearch struct {
	matches   []*qdrantpb.ScoredPoint
	searchErr error
	healthErr error
	lastTopK  int
}

func (f *fakeSearch) QuerySimilar(ctx context.Context, embedding []float32, topK int) ([]*qdrantpb.ScoredPoint, error) {
	f.lastTopK = topK
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.matches, nil
}

func (f *fakeSearch) HealthCheck(ctx context.Context) error { return f.healthErr }

var _ qdrant.SearchProvider = (*fakeSearch)(nil)

func chunkMatch(text string) *qdrantpb.ScoredPoint {
	return &qdrantpb.ScoredPoint{
		Payload: map[string]*qdrantpb.Value{
			"page_content": {Kind: &qdrantpb.Value_StringValue{StringValue: text}},
		},
	}
}

func newTestService(t *testing.T, provider *fakeAIProvider, search *fakeSearch) *Service {
	t.Helper()
	svc, err := NewService(&Config{RetrievalTopK: 3}, provider, search, &services.NoOpLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestAnswerEducational(t *testing.T) {
	provider := &fakeAIProvider{
		embedding:   []float32{0.1, 0.2},
		completions: []string{"El ibuprofeno alivia el dolor.", "INFORMACIÓN_EDUCATIVA"},
	}
	search := &fakeSearch{matches: []*qdrantpb.ScoredPoint{chunkMatch("Ibuprofeno: antiinflamatorio.")}}
	svc := newTestService(t, provider, search)

	answer, err := svc.Answer(context.Background(), "¿para qué sirve el ibuprofeno?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(answer, "El ibuprofeno alivia el dolor.") {
		t.Errorf("expected draft kept, got %q", answer)
	}
	if !strings.HasSuffix(answer, DisclaimerSuffix) {
		t.Error("expected disclaimer suffix")
	}
	if search.lastTopK != 3 {
		t.Errorf("expected topK 3, got %d", search.lastTopK)
	}
	if len(provider.prompts) != 2 {
		t.Fatalf("expected answer + moderation prompts, got %d", len(provider.prompts))
	}
	if !strings.Contains(provider.prompts[0], "Ibuprofeno: antiinflamatorio.") {
		t.Error("answer prompt must carry the retrieved chunk")
	}
}

func TestAnswerPrescriptionLikeBlocked(t *testing.T) {
	provider := &fakeAIProvider{
		embedding:   []float32{0.1},
		completions: []string{"Debes tomar 400mg cada 8 horas.", "PRESCRIPCIÓN_MÉDICA"},
	}
	svc := newTestService(t, provider, &fakeSearch{})

	answer, err := svc.Answer(context.Background(), "¿qué debo tomar para el dolor?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != RefusalMessage {
		t.Errorf("expected refusal, got %q", answer)
	}
	if strings.Contains(answer, "400mg") {
		t.Error("draft content must not leak through the refusal")
	}
}

func TestAnswerNoKnowledge(t *testing.T) {
	provider := &fakeAIProvider{
		embedding:   []float32{0.1},
		completions: []string{"No sé", "INFORMACIÓN_EDUCATIVA"},
	}
	svc := newTestService(t, provider, &fakeSearch{})

	answer, err := svc.Answer(context.Background(), "¿qué es el xanadol?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != NoInformationMessage {
		t.Errorf("expected no-information reply, got %q", answer)
	}
}

func TestAnswerStepFailures(t *testing.T) {
	t.Run("embedding", func(t *testing.T) {
		provider := &fakeAIProvider{embedErr: errors.New("boom")}
		svc := newTestService(t, provider, &fakeSearch{})
		if _, err := svc.Answer(context.Background(), "pregunta"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("search", func(t *testing.T) {
		provider := &fakeAIProvider{embedding: []float32{0.1}}
		search := &fakeSearch{searchErr: errors.New("unreachable")}
		svc := newTestService(t, provider, search)
		if _, err := svc.Answer(context.Background(), "pregunta"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("completion", func(t *testing.T) {
		provider := &fakeAIProvider{embedding: []float32{0.1}, completeErr: errors.New("down")}
		svc := newTestService(t, provider, &fakeSearch{})
		if _, err := svc.Answer(context.Background(), "pregunta"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestAnswerRejectsEmptyQuery(t *testing.T) {
	svc := newTestService(t, &fakeAIProvider{}, &fakeSearch{})
	if _, err := svc.Answer(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestExtractChunkTexts(t *testing.T) {
	matches := []*qdrantpb.ScoredPoint{
		chunkMatch("primero"),
		nil,
		{Payload: nil},
		{Payload: map[string]*qdrantpb.Value{"other": {Kind: &qdrantpb.Value_StringValue{StringValue: "x"}}}},
		chunkMatch("segundo"),
	}

	got := extractChunkTexts(matches)
	if len(got) != 2 || got[0] != "primero" || got[1] != "segundo" {
		t.Errorf("unexpected chunks: %v", got)
	}
}
