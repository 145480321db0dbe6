// File: internal/repository/history/gorm_history_repository.go
package history

import (
	"context"
	"errors"
	"log"

	"github.com/pharmago/pharmago/internal/domain"
	"gorm.io/gorm"
)

const defaultLimit = 10

type gormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) HistoryRepository {
	return &gormHistoryRepository{db: db}
}

func (r *gormHistoryRepository) Append(ctx context.Context, userID, query, response string) error {
	if userID == "" {
		return errors.New("invalid user ID")
	}
	if query == "" || response == "" {
		return errors.New("query and response are required")
	}

	entry := domain.HistoryEntry{UserID: userID, Query: query, Response: response}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[HistoryRepository] Database error appending entry for user %s: %v", userID, err)
		return errors.New("database error appending history")
	}
	return nil
}

func (r *gormHistoryRepository) FindByUserID(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error) {
	if userID == "" {
		return nil, errors.New("invalid user ID")
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	entries := []domain.HistoryEntry{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		log.Printf("[HistoryRepository] Database error fetching history for user %s: %v", userID, err)
		return nil, errors.New("database error fetching history")
	}
	return entries, nil
}
