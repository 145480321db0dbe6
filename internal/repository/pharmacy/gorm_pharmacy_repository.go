// File: internal/repository/pharmacy/gorm_pharmacy_repository.go
package pharmacy

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/pharmago/pharmago/internal/domain"
	"gorm.io/gorm"
)

const insertBatchSize = 500

type gormPharmacyRepository struct {
	db *gorm.DB
}

func NewGormPharmacyRepository(db *gorm.DB) PharmacyRepository {
	return &gormPharmacyRepository{db: db}
}

// ReplaceAll rewrites the directory inside a single transaction. The
// reference implementation deleted and reinserted in separate steps, which
// let a concurrent reader observe an empty table; doing it transactionally
// closes that gap.
func (r *gormPharmacyRepository) ReplaceAll(ctx context.Context, rows []domain.Pharmacy) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Pharmacy{}).Error; err != nil {
			return fmt.Errorf("clearing directory: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("inserting directory rows: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Printf("[PharmacyRepository] Database error during directory reload: %v", err)
		return errors.New("database error reloading pharmacy directory")
	}

	log.Printf("[PharmacyRepository] Directory reloaded with %d rows", len(rows))
	return nil
}

func (r *gormPharmacyRepository) FindByCommune(ctx context.Context, commune string, onDutyOnly bool) ([]domain.Pharmacy, error) {
	if commune == "" {
		return nil, errors.New("commune filter is required")
	}

	query := r.db.WithContext(ctx).Where("commune LIKE ?", "%"+commune+"%")
	if onDutyOnly {
		query = query.Where("on_duty = ?", true)
	}

	var rows []domain.Pharmacy
	if err := query.Find(&rows).Error; err != nil {
		log.Printf("[PharmacyRepository] Database error searching commune %q: %v", commune, err)
		return nil, errors.New("database error searching pharmacies")
	}
	return rows, nil
}

func (r *gormPharmacyRepository) ListRegions(ctx context.Context) ([]string, error) {
	var regions []string
	err := r.db.WithContext(ctx).
		Model(&domain.Pharmacy{}).
		Distinct("region_name").
		Where("region_name <> ''").
		Order("region_name").
		Pluck("region_name", &regions).Error
	if err != nil {
		log.Printf("[PharmacyRepository] Database error listing regions: %v", err)
		return nil, errors.New("database error listing regions")
	}
	return regions, nil
}

func (r *gormPharmacyRepository) ListCommunes(ctx context.Context, region string) ([]string, error) {
	if region == "" {
		return nil, errors.New("region is required")
	}

	var communes []string
	err := r.db.WithContext(ctx).
		Model(&domain.Pharmacy{}).
		Distinct("commune").
		Where("region_name = ? AND commune <> ''", region).
		Order("commune").
		Pluck("commune", &communes).Error
	if err != nil {
		log.Printf("[PharmacyRepository] Database error listing communes for region %q: %v", region, err)
		return nil, errors.New("database error listing communes")
	}
	return communes, nil
}

func (r *gormPharmacyRepository) FindByRegionAndCommune(ctx context.Context, region, commune string) ([]domain.Pharmacy, error) {
	if region == "" || commune == "" {
		return nil, errors.New("region and commune are required")
	}

	var rows []domain.Pharmacy
	err := r.db.WithContext(ctx).
		Where("region_name = ? AND commune = ?", region, commune).
		Order("on_duty DESC, name").
		Find(&rows).Error
	if err != nil {
		log.Printf("[PharmacyRepository] Database error searching %q/%q: %v", region, commune, err)
		return nil, errors.New("database error searching pharmacies")
	}
	return rows, nil
}

func (r *gormPharmacyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Pharmacy{}).Count(&count).Error; err != nil {
		log.Printf("[PharmacyRepository] Database error counting rows: %v", err)
		return 0, errors.New("database error counting pharmacies")
	}
	return count, nil
}
