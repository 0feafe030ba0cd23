package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Placeholder credential values from the sample config. Credentials left at
// these values count as unset, which puts the service into demo mode.
const (
	placeholderPrefix = "your_"
)

// Default daily quotas. Adzuna's free tier is 1000 requests/month, so ~33/day.
const (
	defaultAdzunaDaily    = 33
	defaultJoobleDaily    = 500
	defaultCareerjetDaily = 1000
)

const (
	defaultAdzunaBaseURL    = "https://api.adzuna.com/v1/api/jobs"
	defaultJoobleBaseURL    = "https://jooble.org/api"
	defaultCareerjetBaseURL = "https://public-api.careerjet.com/search"
)

// Config is the root configuration for jobradar.
type Config struct {
	Adzuna       AdzunaConfig
	Jooble       JoobleConfig
	Careerjet    CareerjetConfig
	Quotas       QuotaConfig
	CacheTTL     time.Duration // how long cached search results stay fresh
	HTTPTimeout  time.Duration // per-request timeout for provider calls
	TopN         int           // how many scored results to return
	Storage      StorageConfig
}

// AdzunaConfig holds Adzuna API credentials and locale.
type AdzunaConfig struct {
	AppID   string `yaml:"app_id"`
	AppKey  string `yaml:"app_key"`
	BaseURL string `yaml:"base_url"`
	Country string `yaml:"country"` // e.g. "us", "gb", "de"
}

// JoobleConfig holds the Jooble API key.
type JoobleConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// CareerjetConfig holds the Careerjet affiliate ID.
type CareerjetConfig struct {
	AffiliateID string `yaml:"affiliate_id"`
	BaseURL     string `yaml:"base_url"`
}

// QuotaConfig sets per-provider daily request limits.
type QuotaConfig struct {
	AdzunaDaily    int `yaml:"adzuna_daily"`
	JoobleDaily    int `yaml:"jooble_daily"`
	CareerjetDaily int `yaml:"careerjet_daily"`
}

// Limits returns the quotas keyed by provider name, for the rate limiter.
func (q QuotaConfig) Limits() map[string]int {
	return map[string]int{
		"adzuna":    q.AdzunaDaily,
		"jooble":    q.JoobleDaily,
		"careerjet": q.CareerjetDaily,
	}
}

// StorageConfig selects the key/value backend for cache and quota counters.
type StorageConfig struct {
	Backend    string `yaml:"backend"`     // "sqlite", "redis", or "memory"
	SQLitePath string `yaml:"sqlite_path"` // used when backend is "sqlite"
	RedisURL   string `yaml:"redis_url"`   // used when backend is "redis"
}

// DemoMode reports whether the service should skip all network activity and
// serve only static data. True when Adzuna credentials are missing or still
// carry the sample-config placeholder.
func (c *Config) DemoMode() bool {
	return isPlaceholder(c.Adzuna.AppID) || isPlaceholder(c.Adzuna.AppKey)
}

func isPlaceholder(s string) bool {
	return s == "" || strings.HasPrefix(s, placeholderPrefix)
}

// rawConfig is used for YAML unmarshaling (snake_case fields, durations as strings).
type rawConfig struct {
	Adzuna    AdzunaConfig    `yaml:"adzuna"`
	Jooble    JoobleConfig    `yaml:"jooble"`
	Careerjet CareerjetConfig `yaml:"careerjet"`
	Quotas    QuotaConfig     `yaml:"quotas"`
	CacheTTL  string          `yaml:"cache_ttl"`
	Timeout   string          `yaml:"http_timeout"`
	TopN      int             `yaml:"top_n"`
	Storage   StorageConfig   `yaml:"storage"`
}

// Load reads the YAML config file at path, expands environment variables,
// applies defaults, validates, and returns Config. A .env file next to the
// working directory is loaded first so ${ADZUNA_APP_ID}-style references
// resolve without exporting anything.
func Load(path string) (*Config, error) {
	// Missing .env is fine; it only exists in local setups.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cacheTTL := 1 * time.Hour // default
	if raw.CacheTTL != "" {
		cacheTTL, err = time.ParseDuration(raw.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("parse cache_ttl %q: %w", raw.CacheTTL, err)
		}
	}

	timeout := 10 * time.Second // default
	if raw.Timeout != "" {
		timeout, err = time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse http_timeout %q: %w", raw.Timeout, err)
		}
	}

	cfg := &Config{
		Adzuna:      raw.Adzuna,
		Jooble:      raw.Jooble,
		Careerjet:   raw.Careerjet,
		Quotas:      raw.Quotas,
		CacheTTL:    cacheTTL,
		HTTPTimeout: timeout,
		TopN:        raw.TopN,
		Storage:     raw.Storage,
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Adzuna.BaseURL == "" {
		cfg.Adzuna.BaseURL = defaultAdzunaBaseURL
	}
	if cfg.Adzuna.Country == "" {
		cfg.Adzuna.Country = "us"
	}
	if cfg.Jooble.BaseURL == "" {
		cfg.Jooble.BaseURL = defaultJoobleBaseURL
	}
	if cfg.Careerjet.BaseURL == "" {
		cfg.Careerjet.BaseURL = defaultCareerjetBaseURL
	}
	if cfg.Quotas.AdzunaDaily == 0 {
		cfg.Quotas.AdzunaDaily = defaultAdzunaDaily
	}
	if cfg.Quotas.JoobleDaily == 0 {
		cfg.Quotas.JoobleDaily = defaultJoobleDaily
	}
	if cfg.Quotas.CareerjetDaily == 0 {
		cfg.Quotas.CareerjetDaily = defaultCareerjetDaily
	}
	if cfg.TopN == 0 {
		cfg.TopN = 10
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "sqlite"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "jobradar.db"
	}
}

func validate(cfg *Config) error {
	if cfg.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive, got %v", cfg.CacheTTL)
	}
	if cfg.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %v", cfg.HTTPTimeout)
	}
	if cfg.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1, got %d", cfg.TopN)
	}
	for name, limit := range cfg.Quotas.Limits() {
		if limit < 1 {
			return fmt.Errorf("quotas for %s must be at least 1, got %d", name, limit)
		}
	}
	switch cfg.Storage.Backend {
	case "sqlite", "memory":
	case "redis":
		if cfg.Storage.RedisURL == "" {
			return fmt.Errorf("storage.redis_url is required when backend is \"redis\"")
		}
	default:
		return fmt.Errorf("unknown storage backend %q (want sqlite, redis, or memory)", cfg.Storage.Backend)
	}
	return nil
}
