package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/careerforge/jobradar/internal/watch"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Periodically re-run the search and log new matches",
	Long:  "Run the search on an interval and log jobs that have not been seen before; blocks until SIGINT/SIGTERM.",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 30*time.Minute, "time between sweeps")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	logger.Info("watching for new matches", "interval", watchInterval.String())

	w := watch.New(svc, profile, watchInterval, logger)
	if err := w.Run(ctx); err != nil {
		logger.Error("watcher error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
