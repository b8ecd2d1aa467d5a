// Package main implements the jobika CLI: resume parsing, job aggregation,
// match scoring and skill-gap recommendations.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobika",
	Short: "Resume/job matching toolkit",
	Long:  "Jobika extracts structured profiles from resume documents, aggregates job postings from multiple boards, scores resume/job compatibility and recommends skills to close the gap.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
