// Package watch runs the aggregation pipeline on an interval, keeping the
// result cache warm and surfacing listings that were not in the previous
// sweep.
package watch

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/careerforge/jobradar/internal/model"
)

// Fetcher is the slice of the aggregator the watcher needs.
type Fetcher interface {
	FetchJobs(ctx context.Context, profile *model.UserProfile) []model.JobRecord
}

// Watcher owns the refresh loop for a single profile.
type Watcher struct {
	fetcher  Fetcher
	profile  *model.UserProfile
	interval time.Duration
	logger   *slog.Logger
	seen     map[string]bool
}

// New creates a watcher that refreshes results for profile every interval.
func New(fetcher Fetcher, profile *model.UserProfile, interval time.Duration, logger *slog.Logger) *Watcher {
	return &Watcher{
		fetcher:  fetcher,
		profile:  profile,
		interval: interval,
		logger:   logger,
		seen:     make(map[string]bool),
	}
}

// Run starts the refresh loop: one immediate sweep, then one per interval.
// Returns nil when ctx is cancelled (graceful shutdown).
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("starting watcher", "interval", w.interval.String())

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("shutting down watcher")
			return nil
		case <-time.After(w.interval):
			w.sweep(ctx)
		}
	}
}

func (w *Watcher) sweep(ctx context.Context) {
	for _, job := range w.refresh(ctx) {
		w.logger.Info("new match",
			"title", job.Title,
			"company", job.Company,
			"location", job.Location,
			"score", job.Match,
			"source", job.Source,
			"url", job.ApplyURL,
		)
	}
}

// refresh fetches the current top results and returns those not seen in any
// earlier sweep. Listings are tracked by the same case-insensitive
// (title, company) key the aggregator deduplicates on.
func (w *Watcher) refresh(ctx context.Context) []model.JobRecord {
	jobs := w.fetcher.FetchJobs(ctx, w.profile)

	var fresh []model.JobRecord
	for _, job := range jobs {
		key := strings.ToLower(job.Title) + "_" + strings.ToLower(job.Company)
		if w.seen[key] {
			continue
		}
		w.seen[key] = true
		fresh = append(fresh, job)
	}
	return fresh
}
