package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jobika/jobika/internal/config"
	"github.com/jobika/jobika/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample jobs",
	Long:  "Inserts every board's built-in sample jobs into the database without any network access. Existing jobs with the same (title, company) are skipped.",
	RunE:  runSeed,
}

var seedDBURL string

func init() {
	seedCmd.Flags().StringVar(&seedDBURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	dbURL := seedDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}

	ctx := context.Background()
	st, err := store.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer st.Close()

	batch := newAggregator(config.Defaults()).SampleBatch()
	added, err := st.SaveJobs(ctx, batch)
	if err != nil {
		return err
	}
	fmt.Printf("Database seeded with %d sample jobs\n", added)
	return nil
}
