package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jobika/jobika/internal/observability"
	"github.com/jobika/jobika/internal/store"
	"github.com/spf13/cobra"
)

var scrapeJobsCmd = &cobra.Command{
	Use:   "scrape-jobs",
	Short: "Aggregate job postings from all configured boards",
	Long:  "Fetches job postings from Indeed, Naukri and LinkedIn in order, falling back to built-in samples for boards that cannot be reached, and optionally persists the deduplicated batch.",
	RunE:  runScrapeJobs,
}

var (
	scrapeConfigFile string
	scrapeQuery      string
	scrapeLocation   string
	scrapeLimit      int
	scrapeUseBrowser bool
	scrapeVerbose    bool
	scrapeJSON       bool
	scrapeSave       bool
	scrapeDBURL      string
)

func init() {
	scrapeJobsCmd.Flags().StringVarP(&scrapeConfigFile, "config", "c", "", "Path to JSON config file")
	scrapeJobsCmd.Flags().StringVarP(&scrapeQuery, "query", "q", "", "Search query (default from config)")
	scrapeJobsCmd.Flags().StringVarP(&scrapeLocation, "location", "l", "", "Search location (default from config)")
	scrapeJobsCmd.Flags().IntVar(&scrapeLimit, "limit", 0, "Max jobs per source (default from config)")
	scrapeJobsCmd.Flags().BoolVar(&scrapeUseBrowser, "use-browser", false, "Use a headless browser for boards that render client-side")
	scrapeJobsCmd.Flags().BoolVarP(&scrapeVerbose, "verbose", "v", false, "Print detailed fetch information")
	scrapeJobsCmd.Flags().BoolVar(&scrapeJSON, "json", false, "Print the batch as JSON instead of a summary")
	scrapeJobsCmd.Flags().BoolVar(&scrapeSave, "save", false, "Persist new jobs to the database")
	scrapeJobsCmd.Flags().StringVar(&scrapeDBURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")

	rootCmd.AddCommand(scrapeJobsCmd)
}

func runScrapeJobs(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(scrapeConfigFile)
	if err != nil {
		return err
	}

	// CLI flags win over config file values
	if scrapeQuery != "" {
		cfg.Query = scrapeQuery
	}
	if scrapeLocation != "" {
		cfg.Location = scrapeLocation
	}
	if scrapeLimit > 0 {
		cfg.LimitPerSource = scrapeLimit
	}
	cfg.UseBrowser = cfg.UseBrowser || scrapeUseBrowser
	cfg.Verbose = cfg.Verbose || scrapeVerbose
	if scrapeDBURL != "" {
		cfg.DatabaseURL = scrapeDBURL
	}

	ctx := context.Background()
	jobs := newAggregator(cfg).Aggregate(ctx, cfg.Query, cfg.Location, cfg.LimitPerSource)

	if scrapeJSON {
		jsonBytes, err := json.MarshalIndent(jobs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal jobs: %w", err)
		}
		fmt.Println(string(jsonBytes))
	} else {
		observability.NewPrinter(os.Stdout).PrintJobBatch(jobs)
	}

	if !scrapeSave {
		return nil
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required with --save (set DATABASE_URL or use --db-url)")
	}

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	added, err := st.SaveJobs(ctx, jobs)
	if err != nil {
		return err
	}
	fmt.Printf("Scraped %d jobs, added %d new jobs\n", len(jobs), added)
	return nil
}
