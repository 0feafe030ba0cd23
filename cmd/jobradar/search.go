package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/careerforge/jobradar/internal/model"
)

var asJSON bool

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search all providers and print scored matches",
	Long:  "Fetch jobs from every configured provider, dedupe and score them against your profile, and print the top matches.",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
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

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(jobs)
	}

	printJobs(jobs)
	return nil
}

func printJobs(jobs []model.JobRecord) {
	if len(jobs) == 0 {
		fmt.Println("no matches")
		return
	}

	for i, j := range jobs {
		fmt.Printf("%2d. [%3d] %s — %s\n", i+1, j.Match, j.Title, j.Company)
		fmt.Printf("          %s · %s · %s · via %s\n", j.Location, j.Salary, j.Posted, j.Source)
		if j.ApplyURL != "" {
			fmt.Printf("          %s\n", j.ApplyURL)
		}
	}
}
