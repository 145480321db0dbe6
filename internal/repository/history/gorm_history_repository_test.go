// File: internal/repository/history/gorm_history_repository_test.go
package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pharmago/pharmago/internal/domain"
)

func newTestRepo(t *testing.T) HistoryRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.HistoryEntry{}); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return NewGormHistoryRepository(db)
}

func TestAppendAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Append(ctx, "u1", "consulta", "respuesta"); err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := repo.FindByUserID(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Query != "consulta" || entries[0].Response != "respuesta" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestFindUnknownUserReturnsEmptySlice(t *testing.T) {
	repo := newTestRepo(t)

	entries, err := repo.FindByUserID(context.Background(), "nobody", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("expected empty slice, got %v", entries)
	}
}

func TestFindHonorsLimitAndOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 1; i <= 15; i++ {
		if err := repo.Append(ctx, "u1", fmt.Sprintf("q%d", i), fmt.Sprintf("r%d", i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := repo.FindByUserID(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected default limit of 10, got %d", len(entries))
	}
	if entries[0].Query != "q15" {
		t.Errorf("expected most recent first, got %q", entries[0].Query)
	}
}

func TestAppendValidation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Append(ctx, "", "q", "r"); err == nil {
		t.Error("expected error for empty user id")
	}
	if err := repo.Append(ctx, "u1", "", "r"); err == nil {
		t.Error("expected error for empty query")
	}
}
