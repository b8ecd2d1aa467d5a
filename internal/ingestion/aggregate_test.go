package ingestion

import (
	"context"
	"testing"

	"github.com/jobika/jobika/internal/source"
	"github.com/jobika/jobika/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource is a test double implementing source.Source.
type stubSource struct {
	name    string
	jobs    []types.JobRecord
	live    bool
	samples []types.JobRecord
	calls   int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(_ context.Context, _, _ string, _ int) ([]types.JobRecord, bool) {
	s.calls++
	if s.live {
		return s.jobs, true
	}
	return s.samples, false
}

func (s *stubSource) Samples() []types.JobRecord { return s.samples }

func TestAggregate_ConcatenatesInSourceOrder(t *testing.T) {
	first := &stubSource{name: "A", live: true, jobs: []types.JobRecord{
		{Title: "a1", Company: "c1"}, {Title: "a2", Company: "c2"},
	}}
	second := &stubSource{name: "B", live: true, jobs: []types.JobRecord{
		{Title: "b1", Company: "c3"},
	}}

	agg := &Aggregator{Sources: []source.Source{first, second}, Pace: func() {}}
	jobs := agg.Aggregate(context.Background(), "q", "l", 5)

	require.Len(t, jobs, 3)
	assert.Equal(t, "a1", jobs[0].Title)
	assert.Equal(t, "a2", jobs[1].Title)
	assert.Equal(t, "b1", jobs[2].Title)
}

func TestAggregate_AllSourcesFailingYieldsFallbackConcatenation(t *testing.T) {
	first := &stubSource{name: "A", samples: []types.JobRecord{{Title: "sample-a", Company: "x"}}}
	second := &stubSource{name: "B", samples: []types.JobRecord{{Title: "sample-b", Company: "y"}}}

	agg := &Aggregator{Sources: []source.Source{first, second}, Pace: func() {}}
	jobs := agg.Aggregate(context.Background(), "q", "l", 5)

	require.Len(t, jobs, 2)
	assert.Equal(t, "sample-a", jobs[0].Title)
	assert.Equal(t, "sample-b", jobs[1].Title)
}

func TestAggregate_PacesOnlyAfterLiveFetches(t *testing.T) {
	live := &stubSource{name: "live", live: true, jobs: []types.JobRecord{{Title: "j", Company: "c"}}}
	fallback := &stubSource{name: "fallback", samples: []types.JobRecord{{Title: "s", Company: "c"}}}

	paced := 0
	agg := &Aggregator{
		Sources: []source.Source{live, fallback, live},
		Pace:    func() { paced++ },
	}
	agg.Aggregate(context.Background(), "q", "l", 5)

	assert.Equal(t, 2, paced, "fallback batches do not trigger the pacing delay")
}

func TestAggregate_EnrichesRequiredSkills(t *testing.T) {
	src := &stubSource{name: "A", live: true, jobs: []types.JobRecord{
		{Title: "Backend Engineer", Company: "Acme", Description: "Looking for Python and Docker experience"},
		{Title: "Preset", Company: "Acme", Description: "Python everywhere", RequiredSkills: []string{"Go"}},
	}}

	agg := &Aggregator{Sources: []source.Source{src}, Pace: func() {}}
	jobs := agg.Aggregate(context.Background(), "q", "l", 5)

	require.Len(t, jobs, 2)
	assert.ElementsMatch(t, []string{"Python", "Docker"}, jobs[0].RequiredSkills)
	assert.Equal(t, []string{"Go"}, jobs[1].RequiredSkills, "records already carrying skills are left alone")
}

func TestAggregate_NoSources(t *testing.T) {
	agg := &Aggregator{Pace: func() {}}
	assert.Empty(t, agg.Aggregate(context.Background(), "q", "l", 5))
}

func TestSampleBatch_ConcatenatesAndEnriches(t *testing.T) {
	first := &stubSource{name: "A", samples: []types.JobRecord{
		{Title: "s1", Company: "x", Description: "Django and SQL work"},
	}}
	second := &stubSource{name: "B", samples: []types.JobRecord{{Title: "s2", Company: "y"}}}

	agg := &Aggregator{Sources: []source.Source{first, second}}
	batch := agg.SampleBatch()

	require.Len(t, batch, 2)
	assert.Equal(t, "s1", batch[0].Title)
	assert.ElementsMatch(t, []string{"Django", "SQL"}, batch[0].RequiredSkills)
	assert.Equal(t, 0, first.calls, "sample batches never hit the network path")
}

func TestDefaultSources_FixedLineup(t *testing.T) {
	sources := DefaultSources(source.Options{})

	require.Len(t, sources, 3)
	assert.Equal(t, "Indeed", sources[0].Name())
	assert.Equal(t, "Naukri", sources[1].Name())
	assert.Equal(t, "LinkedIn", sources[2].Name())
}
