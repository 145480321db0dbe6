// File: internal/services/rag/moderation.go
package rag

import "strings"

// User-visible replies of the moderation stage.
const (
	RefusalMessage = "Lo siento, no estoy autorizado para recetar medicamentos o dar consejos de prescripción específicos. Esta información es educativa general. Para tratamientos personalizados, por favor consulte con un profesional de la salud."

	NoInformationMessage = "No tengo información específica sobre ese tema médico en mi base de datos. Para información precisa sobre tratamientos, por favor consulte con un profesional de la salud."

	DisclaimerSuffix = "\n\nNota: Esta información es solo educativa y no constituye consejo médico. Siempre consulte con un profesional de la salud antes de iniciar cualquier tratamiento."
)

const prescriptionLabel = "PRESCRIPCIÓN_MÉDICA"
const educationalLabel = "INFORMACIÓN_EDUCATIVA"

// parseClassification maps the moderation model's raw reply onto a typed
// verdict. The prescription label wins whenever present; anything else that
// carries the educational label counts as educational.
func parseClassification(raw string) Classification {
	verdict := strings.TrimSpace(raw)
	if strings.Contains(verdict, prescriptionLabel) {
		return ClassificationPrescriptionLike
	}
	if strings.Contains(verdict, educationalLabel) {
		return ClassificationEducational
	}
	return ClassificationUnknown
}

// indicatesNoKnowledge reports whether the draft answer admits to having no
// information on the topic.
func indicatesNoKnowledge(answer string) bool {
	if strings.Contains(answer, "No sé") {
		return true
	}
	lower := strings.ToLower(answer)
	return strings.Contains(lower, "no tengo esa información")
}

// finalizeAnswer applies the moderation verdict to a draft answer.
// A prescription-like draft is discarded verbatim for the refusal; an
// unknown verdict is treated like educational, as the reference did.
func finalizeAnswer(draft string, verdict Classification) string {
	if verdict == ClassificationPrescriptionLike {
		return RefusalMessage
	}
	if indicatesNoKnowledge(draft) {
		return NoInformationMessage
	}
	return draft + DisclaimerSuffix
}
