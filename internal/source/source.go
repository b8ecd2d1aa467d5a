// Package source implements the job-board collaborators. Every source is
// fail-soft: a live fetch that errors, returns a non-success status, or
// yields no parseable cards falls back to a small built-in sample batch
// instead of propagating the failure.
package source

import (
	"context"

	"github.com/jobika/jobika/internal/fetch"
	"github.com/jobika/jobika/internal/types"
)

// Source is a single job board collaborator. Fetch returns up to limit job
// records for the query and location; live reports whether the batch came
// from a live fetch (true) or the built-in fallback samples (false). Fetch
// never fails.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query, location string, limit int) (jobs []types.JobRecord, live bool)

	// Samples returns the board's fixed fallback batch. It always succeeds.
	Samples() []types.JobRecord
}

// Options configures a board source. The zero value uses the board's
// production base URL and default fetch behavior.
type Options struct {
	// BaseURL overrides the board's base URL, mainly for tests.
	BaseURL string
	// Fetch overrides HTTP fetch options.
	Fetch *fetch.Options
	// UseBrowser enables the headless-browser fallback on boards that
	// render listings client-side.
	UseBrowser bool
	// Verbose enables detailed fetch logging.
	Verbose bool
}
