package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/careerforge/jobradar/internal/aggregator"
	"github.com/careerforge/jobradar/internal/cache"
	"github.com/careerforge/jobradar/internal/config"
	"github.com/careerforge/jobradar/internal/fallback"
	"github.com/careerforge/jobradar/internal/model"
	"github.com/careerforge/jobradar/internal/provider"
	"github.com/careerforge/jobradar/internal/ratelimit"
	"github.com/careerforge/jobradar/internal/storage"
)

var (
	cfgPath string
	debug   bool

	profilePath string
	interests   []string
	skills      []string
	experience  string
	location    string
	remote      bool
)

var rootCmd = &cobra.Command{
	Use:   "jobradar",
	Short: "Job radar — one search across every board",
	Long:  "JobRadar queries multiple job boards, scores results against your profile, and always has something to show.",
	// Default to `search` so that `jobradar` with no args does the obvious thing.
	RunE: runSearch,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBRADAR_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "p", "", "path to a YAML profile file")
	rootCmd.PersistentFlags().StringSliceVar(&interests, "interest", nil, "career interest, repeatable (e.g. \"Software Development\")")
	rootCmd.PersistentFlags().StringSliceVar(&skills, "skill", nil, "skill, repeatable (e.g. React)")
	rootCmd.PersistentFlags().StringVar(&experience, "experience", "", "experience level: entry, mid, or senior")
	rootCmd.PersistentFlags().StringVar(&location, "location", "", "preferred job location")
	rootCmd.PersistentFlags().BoolVar(&remote, "remote", false, "prefer remote roles")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBRADAR_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("JOBRADAR_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// loadProfile builds the user profile from --profile or the individual flags.
// With neither, it returns nil and scoring falls back to its default.
func loadProfile() (*model.UserProfile, error) {
	if profilePath != "" {
		data, err := os.ReadFile(profilePath)
		if err != nil {
			return nil, fmt.Errorf("read profile: %w", err)
		}
		var p model.UserProfile
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse profile %s: %w", profilePath, err)
		}
		return &p, nil
	}

	if len(interests) == 0 && len(skills) == 0 && experience == "" && location == "" && !remote {
		return nil, nil
	}

	switch strings.ToLower(experience) {
	case "", model.ExperienceEntry, model.ExperienceMid, model.ExperienceSenior:
	default:
		return nil, fmt.Errorf("unknown experience level %q (want entry, mid, or senior)", experience)
	}

	return &model.UserProfile{
		CareerInterests:  interests,
		Skills:           skills,
		ExperienceLevel:  strings.ToLower(experience),
		Location:         location,
		RemotePreference: remote,
	}, nil
}

func newStorage(ctx context.Context, cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemoryKV(), nil
	case "redis":
		return storage.NewRedisKV(ctx, cfg.Storage.RedisURL)
	default:
		return storage.NewSQLiteKV(cfg.Storage.SQLitePath)
	}
}

// buildService wires storage, providers, cache, limiter and fallback into an
// aggregation service. The caller owns kv and must Close it.
func buildService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.KV, *aggregator.Service, error) {
	kv, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	// Priority order: most reliable first.
	providers := []model.Provider{
		provider.NewAdzuna(cfg.Adzuna.AppID, cfg.Adzuna.AppKey, cfg.Adzuna.Country, cfg.Adzuna.BaseURL, httpClient),
		provider.NewJooble(cfg.Jooble.APIKey, cfg.Jooble.BaseURL, httpClient),
		provider.NewCareerjet(cfg.Careerjet.AffiliateID, cfg.Careerjet.BaseURL, httpClient),
	}

	limiter := ratelimit.New(kv, cfg.Quotas.Limits(), logger)
	resultCache := cache.New(kv, cfg.CacheTTL, logger)
	catalog := fallback.NewStaticCatalog(cfg.TopN)

	demoMode := cfg.DemoMode()
	if demoMode {
		logger.Info("placeholder credentials detected, running in demo mode")
	}

	svc := aggregator.New(providers, limiter, resultCache, catalog, demoMode, cfg.TopN, logger)
	return kv, svc, nil
}
