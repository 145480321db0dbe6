// File: internal/repository/transcript/gorm_transcript_repository.go
package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/pharmago/pharmago/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormTranscriptRepository struct {
	db *gorm.DB
}

func NewGormTranscriptRepository(db *gorm.DB) TranscriptRepository {
	return &gormTranscriptRepository{db: db}
}

func (r *gormTranscriptRepository) Save(ctx context.Context, sessionID string, messages []domain.TranscriptMessage) error {
	if sessionID == "" {
		return errors.New("invalid session ID")
	}

	payload, err := json.Marshal(messages)
	if err != nil {
		return errors.New("could not serialize transcript")
	}

	row := domain.Transcript{
		SessionID: sessionID,
		History:   string(payload),
		UpdatedAt: time.Now(),
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"history", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		log.Printf("[TranscriptRepository] Database error saving transcript for session %s: %v", sessionID, err)
		return errors.New("database error saving transcript")
	}
	return nil
}

func (r *gormTranscriptRepository) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("invalid session ID")
	}

	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&domain.Transcript{}).Error
	if err != nil {
		log.Printf("[TranscriptRepository] Database error deleting transcript for session %s: %v", sessionID, err)
		return errors.New("database error deleting transcript")
	}
	return nil
}
