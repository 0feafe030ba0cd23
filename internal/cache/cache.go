// Package cache stores normalized search results keyed by a fingerprint of
// the search parameters. Caching is strictly an optimization: every storage
// failure degrades to a miss or a no-op, never an error to the caller.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/careerforge/jobradar/internal/model"
	"github.com/careerforge/jobradar/internal/storage"
)

const keyPrefix = "job_cache:"

// entry is the stored value: the records plus when they were fetched.
type entry struct {
	Records   []model.JobRecord `json:"records"`
	CreatedAt time.Time         `json:"created_at"`
}

// Cache is a time-boxed result cache over a key/value store.
type Cache struct {
	kv     storage.KV
	ttl    time.Duration
	logger *slog.Logger
}

// New returns a cache whose entries expire after ttl.
func New(kv storage.KV, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{kv: kv, ttl: ttl, logger: logger}
}

// Get returns the cached records for params if a fresh entry exists. An
// expired entry is deleted and reported as a miss. Storage errors are logged
// and reported as a miss.
func (c *Cache) Get(ctx context.Context, params model.SearchParams) ([]model.JobRecord, bool) {
	key := c.key(params)

	raw, ok, err := c.kv.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		c.logger.Warn("cache entry corrupted, dropping", "error", err)
		c.delete(ctx, key)
		return nil, false
	}

	if time.Since(e.CreatedAt) >= c.ttl {
		c.delete(ctx, key)
		return nil, false
	}

	return e.Records, true
}

// Put stores records for params with the current timestamp, overwriting any
// previous entry. Failures are logged and swallowed.
func (c *Cache) Put(ctx context.Context, params model.SearchParams, records []model.JobRecord) {
	data, err := json.Marshal(entry{Records: records, CreatedAt: time.Now()})
	if err != nil {
		c.logger.Warn("cache marshal failed", "error", err)
		return
	}
	if err := c.kv.Set(ctx, c.key(params), string(data)); err != nil {
		c.logger.Warn("cache write failed", "error", err)
	}
}

// Clear removes every cache entry, leaving unrelated keys (such as quota
// counters) untouched.
func (c *Cache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys(ctx, keyPrefix)
	if err != nil {
		return fmt.Errorf("listing cache keys: %w", err)
	}
	if err := c.kv.DeleteMany(ctx, keys); err != nil {
		return fmt.Errorf("clearing %d cache entries: %w", len(keys), err)
	}
	return nil
}

func (c *Cache) delete(ctx context.Context, key string) {
	if err := c.kv.DeleteMany(ctx, []string{key}); err != nil {
		c.logger.Warn("cache delete failed", "error", err)
	}
}

// key derives a deterministic fingerprint from the fields that shape the
// result set. Remote preference only affects scoring, not the query, so it
// is not part of the fingerprint.
func (c *Cache) key(params model.SearchParams) string {
	sum := sha256.Sum256([]byte(params.Keywords + "|" + params.Location + "|" + params.Experience))
	return keyPrefix + hex.EncodeToString(sum[:16])
}
