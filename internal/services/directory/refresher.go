// File: internal/services/directory/refresher.go
package directory

import (
	"context"
	"errors"

	"github.com/pharmago/pharmago/internal/domain"
	"github.com/pharmago/pharmago/internal/repository/pharmacy"
	"github.com/pharmago/pharmago/internal/services"
)

// FeedStats records the outcome of validating one feed.
type FeedStats struct {
	Valid   int
	Invalid int
}

func (s FeedStats) Total() int { return s.Valid + s.Invalid }

// RefreshStats summarizes one directory refresh.
type RefreshStats struct {
	Regular FeedStats
	OnDuty  FeedStats
}

// Refresher rebuilds the pharmacy directory from the two public feeds.
type Refresher struct {
	client     *FeedClient
	repo       pharmacy.PharmacyRepository
	regularURL string
	onDutyURL  string
	logger     services.Logger
}

func NewRefresher(client *FeedClient, repo pharmacy.PharmacyRepository, regularURL, onDutyURL string, logger services.Logger) (*Refresher, error) {
	if client == nil {
		return nil, errors.New("feed client is required")
	}
	if repo == nil {
		return nil, errors.New("pharmacy repository is required")
	}
	if regularURL == "" || onDutyURL == "" {
		return nil, errors.New("both feed URLs are required")
	}
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	return &Refresher{
		client:     client,
		repo:       repo,
		regularURL: regularURL,
		onDutyURL:  onDutyURL,
		logger:     logger,
	}, nil
}

// Refresh downloads both feeds, validates every record and swaps the stored
// directory for the valid rows. If either download fails the stored data is
// left untouched; stale data beats an empty table.
func (r *Refresher) Refresh(ctx context.Context) (RefreshStats, error) {
	var stats RefreshStats

	regular, err := r.client.Fetch(ctx, r.regularURL)
	if err != nil {
		r.logger.Error("Failed to fetch regular pharmacy feed", "url", r.regularURL, "error", err.Error())
		return stats, err
	}
	onDuty, err := r.client.Fetch(ctx, r.onDutyURL)
	if err != nil {
		r.logger.Error("Failed to fetch on-duty pharmacy feed", "url", r.onDutyURL, "error", err.Error())
		return stats, err
	}

	rows, regularStats := r.validateFeed(regular, false)
	stats.Regular = regularStats
	r.logFeedStats("regular", regularStats)

	onDutyRows, onDutyStats := r.validateFeed(onDuty, true)
	stats.OnDuty = onDutyStats
	r.logFeedStats("on-duty", onDutyStats)

	rows = append(rows, onDutyRows...)

	if err := r.repo.ReplaceAll(ctx, rows); err != nil {
		return stats, NewStorageError("replace_directory", err)
	}

	r.logger.Info("Pharmacy directory refreshed",
		"rows", len(rows),
		"invalid", stats.Regular.Invalid+stats.OnDuty.Invalid)
	return stats, nil
}

func (r *Refresher) validateFeed(records []FeedRecord, onDuty bool) ([]domain.Pharmacy, FeedStats) {
	var stats FeedStats
	rows := make([]domain.Pharmacy, 0, len(records))
	for _, rec := range records {
		row, err := ValidateRecord(rec, onDuty)
		if err != nil {
			stats.Invalid++
			r.logger.Debug("Skipping invalid pharmacy record",
				"local_id", rec.LocalID.String(), "reason", err.Error())
			continue
		}
		stats.Valid++
		rows = append(rows, *row)
	}
	return rows, stats
}

func (r *Refresher) logFeedStats(feed string, stats FeedStats) {
	r.logger.Info("Pharmacy feed processed",
		"feed", feed,
		"valid", stats.Valid,
		"invalid", stats.Invalid,
		"total", stats.Total())
}
