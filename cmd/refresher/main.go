// File: cmd/refresher/main.go
//
// One-shot job that rebuilds the pharmacy directory from the public feeds.
// Run it from cron; the web server keeps serving the old data until the
// swap commits.
package main

import (
	"context"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/pharmago/pharmago/internal/config"
	"github.com/pharmago/pharmago/internal/domain"
	pharmacyrepo "github.com/pharmago/pharmago/internal/repository/pharmacy"
	"github.com/pharmago/pharmago/internal/services"
	"github.com/pharmago/pharmago/internal/services/directory"
)

func main() {
	cfg := config.Load()
	logger := services.NewLogger("pharmago-refresher")

	db, err := gorm.Open(sqlite.Open(cfg.PharmacyDBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}
	if err := db.AutoMigrate(&domain.Pharmacy{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	repo := pharmacyrepo.NewGormPharmacyRepository(db)
	client := directory.NewFeedClient(60 * time.Second)

	refresher, err := directory.NewRefresher(client, repo, cfg.FeedURLNormal, cfg.FeedURLOnDuty, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize refresher: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	stats, err := refresher.Refresh(ctx)
	if err != nil {
		log.Fatalf("Directory refresh failed: %v", err)
	}

	logger.Info("Directory refresh finished",
		"regular_valid", stats.Regular.Valid,
		"regular_invalid", stats.Regular.Invalid,
		"on_duty_valid", stats.OnDuty.Valid,
		"on_duty_invalid", stats.OnDuty.Invalid)
}
