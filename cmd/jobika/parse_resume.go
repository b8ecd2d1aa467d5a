package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jobika/jobika/internal/observability"
	"github.com/jobika/jobika/internal/parsing"
	"github.com/jobika/jobika/internal/store"
	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract a structured profile from a resume document",
	Long:  "Extracts plain text from a PDF or DOCX resume and parses contact info, skills and experience into a structured profile.",
	RunE:  runParseResume,
}

var (
	parseResumeFile    string
	parseResumeJSON    bool
	parseResumeEnhance bool
	parseResumeSave    bool
	parseResumeDBURL   string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeFile, "file", "f", "", "Path to resume document (.pdf or .docx) (required)")
	parseResumeCmd.Flags().BoolVar(&parseResumeJSON, "json", false, "Print the profile as JSON instead of a summary")
	parseResumeCmd.Flags().BoolVar(&parseResumeEnhance, "enhance", false, "Print the resume text with weak action verbs rewritten")
	parseResumeCmd.Flags().BoolVar(&parseResumeSave, "save", false, "Persist the profile to the database")
	parseResumeCmd.Flags().StringVar(&parseResumeDBURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")

	if err := parseResumeCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	profile, err := loadResumeProfile(parseResumeFile)
	if err != nil {
		return err
	}

	if parseResumeJSON {
		jsonBytes, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		fmt.Println(string(jsonBytes))
	} else {
		observability.NewPrinter(os.Stdout).PrintResumeProfile(profile)
	}

	if parseResumeEnhance {
		fmt.Println(parsing.EnhanceText(profile.RawText))
	}

	if !parseResumeSave {
		return nil
	}

	dbURL := parseResumeDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("database URL is required with --save (set DATABASE_URL or use --db-url)")
	}

	ctx := context.Background()
	st, err := store.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.SaveResume(ctx, profile)
	if err != nil {
		return err
	}
	fmt.Printf("Saved resume %s\n", id)
	return nil
}
