package history

import (
	"context"

	"github.com/pharmago/pharmago/internal/domain"
)

// HistoryRepository handles the append-only query/response log.
type HistoryRepository interface {
	Append(ctx context.Context, userID, query, response string) error
	// FindByUserID returns up to limit entries, most recent first. A user
	// with no activity gets an empty slice, not an error.
	FindByUserID(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error)
}
