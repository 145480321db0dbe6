package pharmacy

import (
	"context"

	"github.com/pharmago/pharmago/internal/domain"
)

// PharmacyRepository handles directory data operations.
type PharmacyRepository interface {
	// ReplaceAll swaps the whole directory for the given rows in one
	// transaction, so readers never observe a half-loaded table.
	ReplaceAll(ctx context.Context, rows []domain.Pharmacy) error
	FindByCommune(ctx context.Context, commune string, onDutyOnly bool) ([]domain.Pharmacy, error)
	ListRegions(ctx context.Context) ([]string, error)
	ListCommunes(ctx context.Context, region string) ([]string, error)
	FindByRegionAndCommune(ctx context.Context, region, commune string) ([]domain.Pharmacy, error)
	Count(ctx context.Context) (int64, error)
}
