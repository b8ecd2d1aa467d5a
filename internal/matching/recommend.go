package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jobika/jobika/internal/types"
)

// maxRecommendations caps the number of skill gaps surfaced to the user.
const maxRecommendations = 5

// highDemandSkills are always recommended with high priority.
var highDemandSkills = map[string]bool{
	"python":     true,
	"javascript": true,
	"react":      true,
	"node.js":    true,
}

// Recommend produces skill-gap recommendations: skills demanded by jobs
// (want) that the candidate (have) is missing, case-insensitively. Each
// missing skill keeps the casing of its first occurrence in want. The
// output is sorted by priority then skill name and truncated to
// maxRecommendations entries.
func Recommend(have, want []string) []types.Recommendation {
	haveSet := lowerSet(have)

	seen := make(map[string]bool, len(want))
	recommendations := make([]types.Recommendation, 0, len(want))
	for _, skill := range want {
		lower := strings.ToLower(skill)
		if haveSet[lower] || seen[lower] {
			continue
		}
		seen[lower] = true

		priority := types.PriorityMedium
		if highDemandSkills[lower] {
			priority = types.PriorityHigh
		}
		recommendations = append(recommendations, types.Recommendation{
			Skill:        skill,
			Priority:     priority,
			ResourceHint: fmt.Sprintf("Learn %s on Coursera, Udemy, or freeCodeCamp", skill),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].Priority != recommendations[j].Priority {
			return recommendations[i].Priority == types.PriorityHigh
		}
		return recommendations[i].Skill < recommendations[j].Skill
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// PoolSkills returns the union of required skills across a job pool,
// deduplicated case-insensitively with first-seen casing preserved.
func PoolSkills(jobs []types.JobRecord) []string {
	seen := make(map[string]bool)
	var pool []string
	for _, job := range jobs {
		for _, skill := range job.RequiredSkills {
			lower := strings.ToLower(skill)
			if seen[lower] {
				continue
			}
			seen[lower] = true
			pool = append(pool, skill)
		}
	}
	return pool
}
