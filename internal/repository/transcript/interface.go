package transcript

import (
	"context"

	"github.com/pharmago/pharmago/internal/domain"
)

// TranscriptRepository stores one JSON-serialized transcript per session,
// overwritten on every turn.
type TranscriptRepository interface {
	Save(ctx context.Context, sessionID string, messages []domain.TranscriptMessage) error
	Delete(ctx context.Context, sessionID string) error
}
