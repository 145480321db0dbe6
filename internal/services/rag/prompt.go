// File: internal/services/rag/prompt.go
package rag

import (
	"fmt"
	"strings"

	"github.com/qdrant/go-client/qdrant"
)

// Payload key under which the indexer stores chunk text.
const payloadTextKey = "page_content"

// extractChunkTexts pulls the stored document text out of search matches,
// skipping matches without a usable payload.
func extractChunkTexts(matches []*qdrant.ScoredPoint) []string {
	texts := make([]string, 0, len(matches))
	for _, match := range matches {
		if match == nil || match.Payload == nil {
			continue
		}
		if text := getStringFromPayload(match.Payload, payloadTextKey); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

// getStringFromPayload safely extracts string values from a Qdrant payload.
func getStringFromPayload(payload map[string]*qdrant.Value, key string) string {
	value, ok := payload[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.Kind.(*qdrant.Value_StringValue); ok {
		return s.StringValue
	}
	return ""
}

// buildAnswerPrompt assembles the completion request: retrieved chunks as
// context, then the user's question. The model is told to answer "No sé"
// when the context does not cover the question, which the pipeline later
// turns into the fixed no-information reply.
func buildAnswerPrompt(chunks []string, question string) string {
	var context strings.Builder
	for i, chunk := range chunks {
		if i > 0 {
			context.WriteString("\n\n")
		}
		context.WriteString(chunk)
	}

	return fmt.Sprintf(`Usa los siguientes fragmentos de un vademécum de medicamentos para responder la pregunta del final.
Si la información no está en los fragmentos, responde únicamente "No sé".

Contexto:
%s

Pregunta: %s
Respuesta:`, context.String(), question)
}

// buildModerationPrompt asks the model to classify the generated answer as
// general educational information or a personalized prescription.
func buildModerationPrompt(query, answer string) string {
	return fmt.Sprintf(`Analiza esta consulta del usuario y la respuesta generada por un sistema sobre medicamentos:

Consulta: "%s"
Respuesta: "%s"

Tu tarea:
1. Determina si la consulta pide explícitamente una receta o prescripción personalizada.
2. Evalúa si la respuesta está dando una prescripción médica personalizada.

Importante: Distingue entre información educativa general (permitida) y consejos de prescripción específicos (no permitidos).

- Si el usuario solo pide información general sobre medicamentos y la respuesta proporciona información educativa -> responde "INFORMACIÓN_EDUCATIVA"
- Si la respuesta recomienda específicamente qué medicamento debe tomar el usuario o receta personalmente -> responde "PRESCRIPCIÓN_MÉDICA"

Responde ÚNICAMENTE con una de estas dos opciones.`, query, answer)
}
