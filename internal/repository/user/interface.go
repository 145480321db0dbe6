package user

import (
	"context"

	"github.com/pharmago/pharmago/internal/domain"
)

// UserRepository handles chat user profiles.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Upsert creates the profile on first contact; afterwards it refreshes
	// last-active and, when name is non-empty, the display name.
	Upsert(ctx context.Context, id, name string) (*domain.User, error)
}
