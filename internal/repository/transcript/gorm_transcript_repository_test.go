// File: internal/repository/transcript/gorm_transcript_repository_test.go
package transcript

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pharmago/pharmago/internal/domain"
)

func newTestRepo(t *testing.T) (TranscriptRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Transcript{}); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return NewGormTranscriptRepository(db), db
}

func messages(contents ...string) []domain.TranscriptMessage {
	out := make([]domain.TranscriptMessage, len(contents))
	for i, c := range contents {
		out[i] = domain.TranscriptMessage{Role: domain.RoleUser, Content: c, Timestamp: time.Now()}
	}
	return out
}

func TestSaveOverwritesPerSession(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "s1", messages("uno")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, "s1", messages("uno", "dos")); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var count int64
	db.Model(&domain.Transcript{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one row per session, got %d", count)
	}

	var row domain.Transcript
	if err := db.First(&row, "session_id = ?", "s1").Error; err != nil {
		t.Fatalf("loading row: %v", err)
	}
	var stored []domain.TranscriptMessage
	if err := json.Unmarshal([]byte(row.History), &stored); err != nil {
		t.Fatalf("history is not valid JSON: %v", err)
	}
	if len(stored) != 2 || stored[1].Content != "dos" {
		t.Errorf("unexpected stored history: %+v", stored)
	}
}

func TestDelete(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "s1", messages("uno")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	db.Model(&domain.Transcript{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no rows, got %d", count)
	}

	// Deleting an unknown session is not an error.
	if err := repo.Delete(ctx, "missing"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSaveRejectsEmptySessionID(t *testing.T) {
	repo, _ := newTestRepo(t)
	if err := repo.Save(context.Background(), "", nil); err == nil {
		t.Error("expected error for empty session id")
	}
}
