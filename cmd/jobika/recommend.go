package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jobika/jobika/internal/matching"
	"github.com/jobika/jobika/internal/observability"
	"github.com/jobika/jobika/internal/store"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend skills to close the gap to in-demand jobs",
	Long:  "Compares a resume's skill set against the skills demanded across the job pool and prints a prioritized list of gaps with learning-resource hints.",
	RunE:  runRecommend,
}

var (
	recommendResumeFile string
	recommendConfigFile string
	recommendDBURL      string
)

// recommendJobPool is how many recent jobs contribute to the demanded-skill
// aggregate in database mode.
const recommendJobPool = 10

func init() {
	recommendCmd.Flags().StringVarP(&recommendResumeFile, "resume", "r", "", "Path to resume document (required)")
	recommendCmd.Flags().StringVarP(&recommendConfigFile, "config", "c", "", "Path to JSON config file")
	recommendCmd.Flags().StringVar(&recommendDBURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")

	if err := recommendCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(recommendConfigFile)
	if err != nil {
		return err
	}
	if recommendDBURL != "" {
		cfg.DatabaseURL = recommendDBURL
	}

	profile, err := loadResumeProfile(recommendResumeFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var demanded []string
	if cfg.DatabaseURL != "" {
		st, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()

		demanded, err = st.RecentJobSkills(ctx, recommendJobPool)
		if err != nil {
			return err
		}
	} else {
		jobs := newAggregator(cfg).Aggregate(ctx, cfg.Query, cfg.Location, cfg.LimitPerSource)
		demanded = matching.PoolSkills(jobs)
	}

	recs := matching.Recommend(profile.Skills, demanded)
	observability.NewPrinter(os.Stdout).PrintRecommendations(recs)
	return nil
}
