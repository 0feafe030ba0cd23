// Package storage provides the persisted key/value store backing the result
// cache and the daily rate-limit counters. Callers treat every failure as
// soft: a read error is a miss, a write error is a dropped optimization.
package storage

import "context"

// KV is a small durable key/value store. Values are opaque strings; the
// cache serializes JSON into them and the rate limiter stores counters.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes key=value, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// DeleteMany removes the given keys. Missing keys are not an error.
	DeleteMany(ctx context.Context, keys []string) error
	// Keys lists all stored keys with the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
