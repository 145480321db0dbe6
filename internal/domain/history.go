// File: internal/domain/history.go
package domain

import "time"

// HistoryEntry is one query/response pair in the durable per-user log.
// The log is append-only; entries are never updated or deleted.
type HistoryEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Query     string    `gorm:"not null" json:"query"`
	Response  string    `gorm:"not null" json:"response"`
	CreatedAt time.Time `json:"timestamp"`
}

func (HistoryEntry) TableName() string { return "historial" }
