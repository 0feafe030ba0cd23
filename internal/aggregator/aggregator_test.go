package aggregator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/careerforge/jobradar/internal/cache"
	"github.com/careerforge/jobradar/internal/fallback"
	"github.com/careerforge/jobradar/internal/model"
	"github.com/careerforge/jobradar/internal/ratelimit"
	"github.com/careerforge/jobradar/internal/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubProvider returns canned results or a canned error and counts calls.
type stubProvider struct {
	name  string
	jobs  []model.JobRecord
	err   error
	calls int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Fetch(ctx context.Context, params model.SearchParams) ([]model.JobRecord, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.jobs, nil
}

// panickyProvider simulates an unexpected bug inside a provider.
type panickyProvider struct{}

func (panickyProvider) Name() string { return "adzuna" }
func (panickyProvider) Fetch(context.Context, model.SearchParams) ([]model.JobRecord, error) {
	panic("unexpected nil dereference")
}

func jobsFrom(provider string, n int) []model.JobRecord {
	jobs := make([]model.JobRecord, n)
	for i := range jobs {
		jobs[i] = model.JobRecord{
			ID:      fmt.Sprintf("%s_%d", provider, i),
			Title:   fmt.Sprintf("Engineer %d", i),
			Company: fmt.Sprintf("Company %d", i),
			Source:  provider,
		}
	}
	return jobs
}

func testProfile() *model.UserProfile {
	return &model.UserProfile{
		CareerInterests: []string{"Software Development"},
		Skills:          []string{"React"},
		ExperienceLevel: model.ExperienceMid,
	}
}

type fixture struct {
	kv      *storage.MemoryKV
	cache   *cache.Cache
	limiter *ratelimit.DailyLimiter
	catalog *fallback.StaticCatalog
}

func newFixture(limits map[string]int) *fixture {
	kv := storage.NewMemoryKV()
	return &fixture{
		kv:      kv,
		cache:   cache.New(kv, time.Hour, discardLogger()),
		limiter: ratelimit.New(kv, limits, discardLogger()),
		catalog: fallback.NewStaticCatalog(10),
	}
}

func (f *fixture) service(demoMode bool, providers ...model.Provider) *Service {
	return New(providers, f.limiter, f.cache, f.catalog, demoMode, 10, discardLogger())
}

func TestFetchJobsEndToEnd(t *testing.T) {
	// One Adzuna result, Jooble and Careerjet exhausted: the single record
	// comes back scored, provider-prefixed, and source-tagged.
	f := newFixture(map[string]int{"adzuna": 33, "jooble": 0, "careerjet": 0})
	adzuna := &stubProvider{name: "adzuna", jobs: []model.JobRecord{{
		ID:          "adzuna_123",
		Title:       "Senior React Native Developer",
		Company:     "Meta",
		Description: "Build mobile apps with React Native.",
		Source:      "adzuna",
	}}}
	jooble := &stubProvider{name: "jooble", jobs: jobsFrom("jooble", 5)}
	careerjet := &stubProvider{name: "careerjet", jobs: jobsFrom("careerjet", 5)}
	s := f.service(false, adzuna, jooble, careerjet)

	jobs := s.FetchJobs(context.Background(), testProfile())

	if len(jobs) != 1 {
		t.Fatalf("expected exactly 1 job, got %d", len(jobs))
	}
	if jooble.calls != 0 || careerjet.calls != 0 {
		t.Error("expected quota-exhausted providers to be skipped")
	}
	job := jobs[0]
	if job.Source != "adzuna" {
		t.Errorf("expected source adzuna, got %s", job.Source)
	}
	if job.ID != "adzuna_123" {
		t.Errorf("expected provider-prefixed ID, got %s", job.ID)
	}
	// Base 50 + React skill match 10 + source 2; the senior title earns a
	// mid-level user no experience bonus.
	if job.Match < 60 || job.Match > 90 {
		t.Errorf("expected score in [60, 90], got %d", job.Match)
	}
}

func TestFetchJobsStopsOnceEnoughResults(t *testing.T) {
	f := newFixture(map[string]int{})
	adzuna := &stubProvider{name: "adzuna", jobs: jobsFrom("adzuna", 12)}
	jooble := &stubProvider{name: "jooble", jobs: jobsFrom("jooble", 5)}
	s := f.service(false, adzuna, jooble)

	s.FetchJobs(context.Background(), testProfile())

	if adzuna.calls != 1 {
		t.Errorf("expected 1 adzuna call, got %d", adzuna.calls)
	}
	if jooble.calls != 0 {
		t.Error("expected jooble to be skipped once 10 results were collected")
	}
}

func TestFetchJobsContinuesPastFailedProvider(t *testing.T) {
	f := newFixture(map[string]int{})
	adzuna := &stubProvider{name: "adzuna", err: &model.ProviderError{Provider: "adzuna", StatusCode: 500}}
	jooble := &stubProvider{name: "jooble", jobs: jobsFrom("jooble", 3)}
	s := f.service(false, adzuna, jooble)

	jobs := s.FetchJobs(context.Background(), testProfile())

	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs from the surviving provider, got %d", len(jobs))
	}
	for _, job := range jobs {
		if job.Source != "jooble" {
			t.Errorf("expected source jooble, got %s", job.Source)
		}
	}
}

func TestFailedAttemptStillCountsAgainstQuota(t *testing.T) {
	f := newFixture(map[string]int{"adzuna": 33})
	adzuna := &stubProvider{name: "adzuna", err: errors.New("timeout")}
	s := f.service(false, adzuna)

	s.FetchJobs(context.Background(), testProfile())

	if got := f.limiter.CountToday(context.Background(), "adzuna"); got != 1 {
		t.Errorf("expected failed attempt to be recorded, count = %d", got)
	}
}

func TestFetchJobsAllProvidersFailServesFallback(t *testing.T) {
	f := newFixture(map[string]int{})
	providers := []model.Provider{
		&stubProvider{name: "adzuna", err: errors.New("timeout")},
		&stubProvider{name: "jooble", err: errors.New("timeout")},
		&stubProvider{name: "careerjet", err: errors.New("timeout")},
	}
	s := f.service(false, providers...)

	profile := testProfile()
	jobs := s.FetchJobs(context.Background(), profile)

	expected := f.catalog.JobsFor(profile)
	if len(jobs) != len(expected) {
		t.Fatalf("expected the fallback set (%d jobs), got %d", len(expected), len(jobs))
	}
	for i := range jobs {
		if jobs[i].ID != expected[i].ID {
			t.Errorf("position %d: expected %s, got %s", i, expected[i].ID, jobs[i].ID)
		}
		if jobs[i].Source != model.SourceFallback {
			t.Errorf("expected source fallback, got %s", jobs[i].Source)
		}
	}
}

func TestFetchJobsUsesCacheOnSecondCall(t *testing.T) {
	f := newFixture(map[string]int{})
	adzuna := &stubProvider{name: "adzuna", jobs: jobsFrom("adzuna", 3)}
	s := f.service(false, adzuna)
	ctx := context.Background()

	s.FetchJobs(ctx, testProfile())
	s.FetchJobs(ctx, testProfile())

	if adzuna.calls != 1 {
		t.Errorf("expected second call to be served from cache, got %d provider calls", adzuna.calls)
	}
}

func TestDemoModeSkipsProvidersEntirely(t *testing.T) {
	f := newFixture(map[string]int{})
	adzuna := &stubProvider{name: "adzuna", jobs: jobsFrom("adzuna", 3)}
	s := f.service(true, adzuna)

	jobs := s.FetchJobs(context.Background(), testProfile())

	if adzuna.calls != 0 {
		t.Error("expected no provider calls in demo mode")
	}
	if len(jobs) == 0 || jobs[0].Source != model.SourceFallback {
		t.Error("expected static fallback data in demo mode")
	}
}

func TestFetchJobsRecoversFromPanic(t *testing.T) {
	f := newFixture(map[string]int{})
	s := f.service(false, panickyProvider{})

	jobs := s.FetchJobs(context.Background(), testProfile())

	if len(jobs) == 0 || jobs[0].Source != model.SourceFallback {
		t.Error("expected fallback data after a provider panic")
	}
}

func TestFetchJobsReturnsAtMostTopN(t *testing.T) {
	f := newFixture(map[string]int{})
	adzuna := &stubProvider{name: "adzuna", jobs: jobsFrom("adzuna", 20)}
	s := f.service(false, adzuna)

	if jobs := s.FetchJobs(context.Background(), testProfile()); len(jobs) > 10 {
		t.Errorf("expected at most 10 jobs, got %d", len(jobs))
	}
}

func TestDedupeFirstOccurrenceWins(t *testing.T) {
	jobs := []model.JobRecord{
		{ID: "adzuna_1", Title: "Backend Engineer", Company: "Acme", Source: "adzuna"},
		{ID: "jooble_9", Title: "backend engineer", Company: "ACME", Source: "jooble"},
		{ID: "jooble_2", Title: "Frontend Engineer", Company: "Acme", Source: "jooble"},
	}

	unique := Dedupe(jobs)
	if len(unique) != 2 {
		t.Fatalf("expected 2 unique jobs, got %d", len(unique))
	}
	if unique[0].ID != "adzuna_1" {
		t.Errorf("expected first occurrence to win, got %s", unique[0].ID)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	jobs := []model.JobRecord{
		{ID: "a", Title: "Engineer", Company: "Acme"},
		{ID: "b", Title: "Engineer", Company: "ACME"},
		{ID: "c", Title: "Designer", Company: "Acme"},
	}

	once := Dedupe(jobs)
	twice := Dedupe(once)
	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("position %d changed: %s -> %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestQuotaTodayReportsPerProvider(t *testing.T) {
	f := newFixture(map[string]int{"adzuna": 33, "jooble": 500})
	adzuna := &stubProvider{name: "adzuna", jobs: jobsFrom("adzuna", 1)}
	jooble := &stubProvider{name: "jooble", jobs: jobsFrom("jooble", 1)}
	s := f.service(false, adzuna, jooble)
	ctx := context.Background()

	s.FetchJobs(ctx, testProfile())

	counts := s.QuotaToday(ctx)
	if counts["adzuna"] != 1 {
		t.Errorf("expected adzuna count 1, got %d", counts["adzuna"])
	}
	if counts["jooble"] != 1 {
		t.Errorf("expected jooble count 1, got %d", counts["jooble"])
	}
}

func TestClearCacheForcesRefetch(t *testing.T) {
	f := newFixture(map[string]int{})
	adzuna := &stubProvider{name: "adzuna", jobs: jobsFrom("adzuna", 2)}
	s := f.service(false, adzuna)
	ctx := context.Background()

	s.FetchJobs(ctx, testProfile())
	if err := s.ClearCache(ctx); err != nil {
		t.Fatalf("ClearCache: %v", err)
	}
	s.FetchJobs(ctx, testProfile())

	if adzuna.calls != 2 {
		t.Errorf("expected refetch after cache clear, got %d calls", adzuna.calls)
	}
}
