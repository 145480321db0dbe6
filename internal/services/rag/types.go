// File: internal/services/rag/types.go
package rag

// Logger defines the logging interface used by the RAG pipeline
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Classification is the moderation verdict over a generated answer.
type Classification int

const (
	// ClassificationUnknown means the moderation model answered with
	// neither expected label.
	ClassificationUnknown Classification = iota
	// ClassificationEducational marks general educational information,
	// which is allowed through with a disclaimer.
	ClassificationEducational
	// ClassificationPrescriptionLike marks personalized prescription or
	// medical advice, which is replaced by a refusal.
	ClassificationPrescriptionLike
)

func (c Classification) String() string {
	switch c {
	case ClassificationEducational:
		return "educational"
	case ClassificationPrescriptionLike:
		return "prescription_like"
	default:
		return "unknown"
	}
}
