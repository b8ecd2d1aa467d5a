// Package matching computes resume/job compatibility scores and skill-gap
// recommendations. Every function here is a pure, deterministic computation.
package matching

import (
	"strings"

	"github.com/jobika/jobika/internal/types"
)

// Weights for the two scoring components. Skills dominate because they are
// the explicit structured signal; free-text keyword overlap is a noisy
// secondary signal capped at its weight.
const (
	skillWeight   = 70.0
	keywordWeight = 30.0

	// neutralScore is returned when either side has no skill data to compare.
	neutralScore = 50
)

// Score computes the compatibility between a resume and a job as an integer
// in [types.MinMatchScore, types.MaxMatchScore].
//
// Skill overlap is measured against the job's skill set (the denominator is
// the job side, so the function is not symmetric). When both free-text
// arguments are non-empty, whitespace-token overlap adds up to keywordWeight
// points. The result is truncated, not rounded, before clamping.
func Score(resumeSkills, jobSkills []string, resumeText, jobDescription string) int {
	if len(resumeSkills) == 0 || len(jobSkills) == 0 {
		return neutralScore
	}

	resumeSet := lowerSet(resumeSkills)
	jobSet := lowerSet(jobSkills)

	matches := 0
	for skill := range jobSet {
		if resumeSet[skill] {
			matches++
		}
	}
	skillScore := float64(matches) / float64(len(jobSet)) * skillWeight

	keywordScore := 0.0
	if resumeText != "" && jobDescription != "" {
		resumeTokens := tokenSet(resumeText)
		jobTokens := tokenSet(jobDescription)
		common := 0
		for token := range jobTokens {
			if resumeTokens[token] {
				common++
			}
		}
		keywordScore = float64(common) / float64(max(len(jobTokens), 1)) * keywordWeight
		if keywordScore > keywordWeight {
			keywordScore = keywordWeight
		}
	}

	total := int(skillScore + keywordScore)
	if total < types.MinMatchScore {
		return types.MinMatchScore
	}
	if total > types.MaxMatchScore {
		return types.MaxMatchScore
	}
	return total
}

// lowerSet builds a lower-cased membership set from a skill list.
func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}

// tokenSet splits text on whitespace into a set of lower-cased tokens.
// No stemming and no punctuation stripping.
func tokenSet(text string) map[string]bool {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]bool, len(fields))
	for _, field := range fields {
		set[field] = true
	}
	return set
}
