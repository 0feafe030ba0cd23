package model

import "context"

// Experience levels a user can declare.
const (
	ExperienceEntry  = "entry"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
)

// SourceFallback marks records served from the static catalog rather than a
// live provider.
const SourceFallback = "fallback"

// JobRecord is the unified representation of a job listing from any provider.
// Fields carry JSON tags because records round-trip through the result cache.
type JobRecord struct {
	ID          string   `json:"id"`          // provider-prefixed, globally unique per result set
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`      // display string, e.g. "$90k - $120k"
	Type        string   `json:"type"`        // employment type
	Description string   `json:"description"`
	ApplyURL    string   `json:"apply_url"`
	Posted      string   `json:"posted"`      // relative, e.g. "2 days ago"
	Skills      []string `json:"skills"`      // extracted from the description, max 5
	Source      string   `json:"source"`      // provider name or "fallback"
	Match       int      `json:"match"`       // 0-100 relevance score, 0 until scored
}

// UserProfile describes the person jobs are matched against. Owned by the
// caller; this package only reads it.
type UserProfile struct {
	CareerInterests  []string `yaml:"career_interests"`
	Skills           []string `yaml:"skills"`
	ExperienceLevel  string   `yaml:"experience_level"` // entry|mid|senior
	Location         string   `yaml:"location"`
	RemotePreference bool     `yaml:"remote_preference"`
}

// SearchParams is the provider query derived from a profile. Also the basis
// of the cache key, so it must stay a plain comparable value.
type SearchParams struct {
	Keywords   string
	Location   string
	Experience string
	Remote     bool
}

// Provider fetches job listings from one external search API and returns
// them already normalized into JobRecords.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, params SearchParams) ([]JobRecord, error)
}

// FallbackCatalog produces static records for a profile when no live source
// can serve it.
type FallbackCatalog interface {
	JobsFor(profile *UserProfile) []JobRecord
}
