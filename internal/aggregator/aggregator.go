// Package aggregator orchestrates the full job-search pipeline: cache
// lookup, prioritized provider fetches under daily quotas, deduplication,
// scoring, and the static fallback. Its public contract never fails — every
// path resolves to some list of records.
package aggregator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/careerforge/jobradar/internal/cache"
	"github.com/careerforge/jobradar/internal/model"
	"github.com/careerforge/jobradar/internal/ratelimit"
	"github.com/careerforge/jobradar/internal/score"
)

// Service aggregates job listings from multiple providers for one user.
type Service struct {
	providers []model.Provider // fixed priority order, most reliable first
	limiter   *ratelimit.DailyLimiter
	cache     *cache.Cache
	catalog   model.FallbackCatalog
	logger    *slog.Logger
	demoMode  bool
	topN      int
}

// New wires an aggregation service. Providers are queried in the order
// given. When demoMode is set, FetchJobs never touches the network.
func New(
	providers []model.Provider,
	limiter *ratelimit.DailyLimiter,
	resultCache *cache.Cache,
	catalog model.FallbackCatalog,
	demoMode bool,
	topN int,
	logger *slog.Logger,
) *Service {
	return &Service{
		providers: providers,
		limiter:   limiter,
		cache:     resultCache,
		catalog:   catalog,
		logger:    logger,
		demoMode:  demoMode,
		topN:      topN,
	}
}

// FetchJobs returns the top scored job records for profile. It degrades
// through cache and fallback data rather than failing: the caller always
// receives a usable list.
func (s *Service) FetchJobs(ctx context.Context, profile *model.UserProfile) (result []model.JobRecord) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("aggregation panicked, serving fallback", "panic", r)
			result = s.catalog.JobsFor(profile)
		}
	}()

	if s.demoMode {
		s.logger.Info("demo mode enabled, serving static data")
		return s.catalog.JobsFor(profile)
	}

	params := BuildSearchParams(profile)

	if cached, ok := s.cache.Get(ctx, params); ok && len(cached) > 0 {
		s.logger.Info("serving cached results", "count", len(cached))
		return score.Rank(cached, profile, s.topN)
	}

	collected := s.fetchFromProviders(ctx, params)
	deduped := Dedupe(collected)

	if len(deduped) == 0 {
		s.logger.Warn("no live results, serving fallback")
		return s.catalog.JobsFor(profile)
	}

	s.cache.Put(ctx, params, deduped)
	s.logger.Info("fetched live results", "collected", len(collected), "deduped", len(deduped))

	return score.Rank(deduped, profile, s.topN)
}

// fetchFromProviders walks the priority list with an accumulator and a stop
// predicate: once topN results are collected, remaining providers are not
// attempted. Each call is independent; a failure counts as zero results.
func (s *Service) fetchFromProviders(ctx context.Context, params model.SearchParams) []model.JobRecord {
	var collected []model.JobRecord

	for _, p := range s.providers {
		if len(collected) >= s.topN {
			break
		}
		if !s.limiter.Allow(ctx, p.Name()) {
			s.logger.Info("daily quota reached, skipping provider", "provider", p.Name())
			continue
		}

		jobs, err := p.Fetch(ctx, params)
		// Every attempt counts against the quota, even a failed one.
		s.limiter.Record(ctx, p.Name())
		if err != nil {
			s.logger.Warn("provider fetch failed", "provider", p.Name(), "error", err)
			continue
		}

		s.logger.Debug("provider returned results", "provider", p.Name(), "count", len(jobs))
		collected = append(collected, jobs...)
	}

	return collected
}

// Dedupe removes records sharing a case-insensitive (title, company) key;
// the first occurrence wins, so higher-priority providers shadow lower ones.
func Dedupe(jobs []model.JobRecord) []model.JobRecord {
	seen := make(map[string]bool, len(jobs))
	var unique []model.JobRecord
	for _, job := range jobs {
		key := strings.ToLower(job.Title) + "_" + strings.ToLower(job.Company)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, job)
	}
	return unique
}

// ClearCache removes every cached search result.
func (s *Service) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

// QuotaToday reports today's request count per provider, for display.
func (s *Service) QuotaToday(ctx context.Context) map[string]int {
	counts := make(map[string]int, len(s.providers))
	for _, p := range s.providers {
		counts[p.Name()] = s.limiter.CountToday(ctx, p.Name())
	}
	return counts
}
