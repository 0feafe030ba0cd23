package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/careerforge/jobradar/internal/model"
	"github.com/careerforge/jobradar/internal/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testParams() model.SearchParams {
	return model.SearchParams{
		Keywords:   "software engineer OR developer",
		Location:   "remote",
		Experience: model.ExperienceMid,
	}
}

func testRecords() []model.JobRecord {
	return []model.JobRecord{
		{ID: "adzuna_1", Title: "Backend Engineer", Company: "Acme", Source: "adzuna"},
		{ID: "jooble_2", Title: "Frontend Engineer", Company: "Globex", Source: "jooble"},
	}
}

func TestPutThenGetReturnsStoredRecords(t *testing.T) {
	c := New(storage.NewMemoryKV(), time.Hour, discardLogger())
	ctx := context.Background()

	c.Put(ctx, testParams(), testRecords())

	got, ok := c.Get(ctx, testParams())
	if !ok {
		t.Fatal("expected cache hit after Put")
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != "adzuna_1" || got[1].ID != "jooble_2" {
		t.Errorf("records did not round-trip: %+v", got)
	}
}

func TestGetMissesOnUnknownParams(t *testing.T) {
	c := New(storage.NewMemoryKV(), time.Hour, discardLogger())

	if _, ok := c.Get(context.Background(), testParams()); ok {
		t.Error("expected miss on empty cache")
	}
}

func TestExpiredEntryIsMissAndDeleted(t *testing.T) {
	kv := storage.NewMemoryKV()
	c := New(kv, time.Hour, discardLogger())
	ctx := context.Background()

	// Write an entry whose timestamp is already past the TTL.
	data, err := json.Marshal(entry{
		Records:   testRecords(),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := kv.Set(ctx, c.key(testParams()), string(data)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, ok := c.Get(ctx, testParams()); ok {
		t.Fatal("expected expired entry to be a miss")
	}

	// The expired entry must also be gone from storage.
	if _, exists, _ := kv.Get(ctx, c.key(testParams())); exists {
		t.Error("expected expired entry to be deleted")
	}
}

func TestCorruptedEntryIsMiss(t *testing.T) {
	kv := storage.NewMemoryKV()
	c := New(kv, time.Hour, discardLogger())
	ctx := context.Background()

	if err := kv.Set(ctx, c.key(testParams()), "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, ok := c.Get(ctx, testParams()); ok {
		t.Error("expected corrupted entry to be a miss")
	}
}

func TestDifferentParamsDifferentKeys(t *testing.T) {
	c := New(storage.NewMemoryKV(), time.Hour, discardLogger())
	ctx := context.Background()

	c.Put(ctx, testParams(), testRecords())

	other := testParams()
	other.Location = "berlin"
	if _, ok := c.Get(ctx, other); ok {
		t.Error("expected miss for different location")
	}
}

func TestClearRemovesOnlyCacheKeys(t *testing.T) {
	kv := storage.NewMemoryKV()
	c := New(kv, time.Hour, discardLogger())
	ctx := context.Background()

	c.Put(ctx, testParams(), testRecords())
	if err := kv.Set(ctx, "rate_limit:adzuna:2026-08-30", "5"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if _, ok := c.Get(ctx, testParams()); ok {
		t.Error("expected cache to be empty after Clear")
	}
	if _, exists, _ := kv.Get(ctx, "rate_limit:adzuna:2026-08-30"); !exists {
		t.Error("expected unrelated key to survive Clear")
	}
}

// failingKV simulates a broken storage backend.
type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (failingKV) Set(context.Context, string, string) error   { return errors.New("disk on fire") }
func (failingKV) DeleteMany(context.Context, []string) error  { return errors.New("disk on fire") }
func (failingKV) Keys(context.Context, string) ([]string, error) {
	return nil, errors.New("disk on fire")
}
func (failingKV) Close() error { return nil }

func TestStorageFailureDegradesToMiss(t *testing.T) {
	c := New(failingKV{}, time.Hour, discardLogger())
	ctx := context.Background()

	if _, ok := c.Get(ctx, testParams()); ok {
		t.Error("expected miss when storage fails")
	}
	// Put must not panic or surface the error.
	c.Put(ctx, testParams(), testRecords())
}
