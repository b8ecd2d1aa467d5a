package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/jobika/jobika/internal/matching"
	"github.com/jobika/jobika/internal/observability"
	"github.com/jobika/jobika/internal/store"
	"github.com/jobika/jobika/internal/types"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a pool of jobs",
	Long:  "Extracts a profile from a resume document and scores it against stored jobs (when a database is configured) or a freshly aggregated batch, highest score first.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchConfigFile string
	matchQuery      string
	matchLocation   string
	matchLimit      int
	matchDBURL      string
	matchVerbose    bool
)

// matchRecentJobs is how many stored jobs are considered in database mode.
const matchRecentJobs = 10

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume document (required)")
	matchCmd.Flags().StringVarP(&matchConfigFile, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVarP(&matchQuery, "query", "q", "", "Search query for live aggregation mode")
	matchCmd.Flags().StringVarP(&matchLocation, "location", "l", "", "Search location for live aggregation mode")
	matchCmd.Flags().IntVar(&matchLimit, "limit", 0, "Max jobs per source in live aggregation mode")
	matchCmd.Flags().StringVar(&matchDBURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed information")

	if err := matchCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(matchConfigFile)
	if err != nil {
		return err
	}
	if matchQuery != "" {
		cfg.Query = matchQuery
	}
	if matchLocation != "" {
		cfg.Location = matchLocation
	}
	if matchLimit > 0 {
		cfg.LimitPerSource = matchLimit
	}
	if matchDBURL != "" {
		cfg.DatabaseURL = matchDBURL
	}
	cfg.Verbose = cfg.Verbose || matchVerbose

	profile, err := loadResumeProfile(matchResumeFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var jobs []types.JobRecord
	if cfg.DatabaseURL != "" {
		st, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()

		jobs, err = st.RecentJobs(ctx, matchRecentJobs)
		if err != nil {
			return err
		}
	} else {
		jobs = newAggregator(cfg).Aggregate(ctx, cfg.Query, cfg.Location, cfg.LimitPerSource)
	}

	if len(jobs) == 0 {
		return fmt.Errorf("no jobs to match against")
	}

	type scoredJob struct {
		job   types.JobRecord
		score int
	}
	scored := make([]scoredJob, len(jobs))
	for i, job := range jobs {
		scored[i] = scoredJob{
			job:   job,
			score: matching.Score(profile.Skills, job.RequiredSkills, profile.RawText, job.Description),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	printer := observability.NewPrinter(os.Stdout)
	for i := range scored {
		printer.PrintMatchSummary(profile, &scored[i].job, scored[i].score)
	}
	return nil
}
