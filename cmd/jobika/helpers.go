package main

import (
	"fmt"
	"os"

	"github.com/jobika/jobika/internal/config"
	"github.com/jobika/jobika/internal/extract"
	"github.com/jobika/jobika/internal/ingestion"
	"github.com/jobika/jobika/internal/parsing"
	"github.com/jobika/jobika/internal/source"
	"github.com/jobika/jobika/internal/types"
)

// loadRunConfig merges a config file (optional) with built-in defaults and
// the DATABASE_URL environment variable.
func loadRunConfig(configPath string) (config.Config, error) {
	defaults := config.Defaults()
	defaults.DatabaseURL = os.Getenv("DATABASE_URL")

	if configPath == "" {
		return defaults, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	merged := cfg.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadResumeProfile extracts text from a resume document and parses it into
// a structured profile.
func loadResumeProfile(path string) (*types.ResumeProfile, error) {
	format, err := extract.DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := extract.Text(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	return parsing.ExtractFields(text), nil
}

// newAggregator builds the standard aggregator from a run config.
func newAggregator(cfg config.Config) *ingestion.Aggregator {
	return &ingestion.Aggregator{
		Sources: ingestion.DefaultSources(source.Options{
			UseBrowser: cfg.UseBrowser,
			Verbose:    cfg.Verbose,
		}),
		Verbose: cfg.Verbose,
	}
}
