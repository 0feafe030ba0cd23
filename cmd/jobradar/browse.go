package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/careerforge/jobradar/internal/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Search and browse matches in an interactive TUI",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	profile, err := loadProfile()
	if err != nil {
		logger.Error("failed to load profile", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, svc, err := buildService(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build service", "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	jobs := svc.FetchJobs(ctx, profile)
	return browse.Run(jobs)
}
