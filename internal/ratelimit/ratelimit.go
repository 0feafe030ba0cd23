// Package ratelimit tracks per-provider, per-day request counts. It is a
// best-effort client-side throttle for free API tiers, not an authoritative
// limiter: counters live in local storage, there is no cross-process
// coordination, and a storage failure never blocks a call.
package ratelimit

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/careerforge/jobradar/internal/storage"
)

const keyPrefix = "rate_limit:"

// DailyLimiter gates provider calls against per-provider daily quotas.
type DailyLimiter struct {
	kv     storage.KV
	limits map[string]int // daily limit per provider name
	logger *slog.Logger
	now    func() time.Time
}

// New returns a limiter enforcing the given per-provider daily limits.
// Providers without a configured limit are never gated.
func New(kv storage.KV, limits map[string]int, logger *slog.Logger) *DailyLimiter {
	return &DailyLimiter{
		kv:     kv,
		limits: limits,
		logger: logger,
		now:    time.Now,
	}
}

// Allow reports whether provider may be called today. If the counter cannot
// be read it returns true: availability over strict quota enforcement.
func (l *DailyLimiter) Allow(ctx context.Context, provider string) bool {
	limit, ok := l.limits[provider]
	if !ok {
		return true
	}
	return l.CountToday(ctx, provider) < limit
}

// Record increments today's counter for provider, creating it at 0 if
// absent. Called after every attempted request, success or failure.
func (l *DailyLimiter) Record(ctx context.Context, provider string) {
	key := l.key(provider)
	count := l.readCount(ctx, key)
	if err := l.kv.Set(ctx, key, strconv.Itoa(count+1)); err != nil {
		l.logger.Warn("rate limit update failed", "provider", provider, "error", err)
	}
}

// CountToday returns today's request count for provider. Exposed for the
// quota display; a read failure counts as zero.
func (l *DailyLimiter) CountToday(ctx context.Context, provider string) int {
	return l.readCount(ctx, l.key(provider))
}

func (l *DailyLimiter) readCount(ctx context.Context, key string) int {
	raw, ok, err := l.kv.Get(ctx, key)
	if err != nil {
		l.logger.Warn("rate limit read failed", "key", key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		l.logger.Warn("rate limit counter corrupted", "key", key, "value", raw)
		return 0
	}
	return count
}

// key scopes the counter to provider and calendar day. A new day naturally
// starts a fresh counter; old keys are simply never read again.
func (l *DailyLimiter) key(provider string) string {
	return keyPrefix + provider + ":" + l.now().Format("2006-01-02")
}
