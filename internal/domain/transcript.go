// File: internal/domain/transcript.go
package domain

import "time"

// Role values for transcript messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TranscriptMessage is a single turn of an in-process chat transcript.
type TranscriptMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is the durable snapshot of a session transcript, serialized as
// JSON. One row per session id, overwritten on every turn (last write wins).
type Transcript struct {
	SessionID string    `gorm:"primarykey" json:"session_id"`
	History   string    `gorm:"not null" json:"history"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Transcript) TableName() string { return "chat_history" }
