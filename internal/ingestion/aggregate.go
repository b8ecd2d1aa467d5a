// Package ingestion orchestrates the job-source collaborators and merges
// their output into a single batch.
package ingestion

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/jobika/jobika/internal/skills"
	"github.com/jobika/jobika/internal/source"
	"github.com/jobika/jobika/internal/types"
)

// Aggregator fetches jobs from every configured source sequentially, in
// configuration order, and concatenates the results. The output may contain
// duplicates across sources; deduplication by identity key happens at the
// storage boundary, not here.
type Aggregator struct {
	// Sources are invoked in order. The order is part of the output
	// contract: each source's batch keeps its internal order and batches
	// are concatenated in source order.
	Sources []source.Source

	// Pace is called after each live (non-fallback) fetch to reduce the
	// chance of rate limiting. It carries no correctness contract. When
	// nil, DefaultPace is used.
	Pace func()

	// Verbose enables per-source logging.
	Verbose bool
}

// DefaultSources returns the standard board lineup in its fixed order.
func DefaultSources(opts source.Options) []source.Source {
	return []source.Source{
		source.NewIndeed(opts),
		source.NewNaukri(opts),
		source.NewLinkedIn(opts),
	}
}

// DefaultPace sleeps for a uniformly random 1-3 seconds.
func DefaultPace() {
	time.Sleep(time.Duration((1 + 2*rand.Float64()) * float64(time.Second)))
}

// SampleBatch returns the concatenation of every source's fallback samples,
// enriched, in source order. It performs no network access and is used to
// seed an empty store.
func (a *Aggregator) SampleBatch() []types.JobRecord {
	var all []types.JobRecord
	for _, src := range a.Sources {
		jobs := src.Samples()
		for i := range jobs {
			if jobs[i].RequiredSkills == nil {
				jobs[i].RequiredSkills = skills.DeriveJobSkills(jobs[i].Description)
			}
		}
		all = append(all, jobs...)
	}
	return all
}

// Aggregate collects up to limitPerSource jobs from each source. Every
// record is enriched with its required-skill set derived from the
// description before being returned. Aggregate never fails: sources that
// cannot deliver live results contribute their fallback samples.
func (a *Aggregator) Aggregate(ctx context.Context, query, location string, limitPerSource int) []types.JobRecord {
	pace := a.Pace
	if pace == nil {
		pace = DefaultPace
	}

	var all []types.JobRecord
	for _, src := range a.Sources {
		jobs, live := src.Fetch(ctx, query, location, limitPerSource)
		if a.Verbose {
			log.Printf("[INGEST] %s: %d jobs (live=%v)", src.Name(), len(jobs), live)
		}

		for i := range jobs {
			if jobs[i].RequiredSkills == nil {
				jobs[i].RequiredSkills = skills.DeriveJobSkills(jobs[i].Description)
			}
		}
		all = append(all, jobs...)

		if live {
			pace()
		}
	}
	return all
}
