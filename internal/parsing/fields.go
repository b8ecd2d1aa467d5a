// Package parsing extracts structured resume fields from plain text.
package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jobika/jobika/internal/skills"
	"github.com/jobika/jobika/internal/types"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePatterns are tried in priority order; the first pattern that matches
// anywhere in the text wins.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+91[-\s]?\d{10}`),
	regexp.MustCompile(`\d{10}`),
	regexp.MustCompile(`\(\d{3}\)[-\s]?\d{3}[-\s]?\d{4}`),
}

// experiencePatterns are tried in order against lower-cased text; only the
// first captured integer across the whole text is used.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience[:\s]+(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s+in`),
}

// nameLineLimit is how many leading lines are considered when guessing the
// candidate name.
const nameLineLimit = 5

// ExtractFields builds a ResumeProfile from resume text. It never fails:
// fields that cannot be found resolve to their zero value (empty string,
// empty skill set, zero years).
func ExtractFields(text string) *types.ResumeProfile {
	return &types.ResumeProfile{
		RawText:         text,
		Email:           ExtractEmail(text),
		Phone:           ExtractPhone(text),
		Name:            ExtractName(text),
		Skills:          skills.ExtractSkills(text),
		ExperienceYears: ExtractExperienceYears(text),
	}
}

// ExtractEmail returns the first email address in the text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone number in the text, trying each
// known format in priority order, or "".
func ExtractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

// ExtractName guesses the candidate name from the first few lines. The
// heuristic picks the first short line that is not an email or URL; it is
// known to misfire on headers and is kept as-is on purpose.
func ExtractName(text string) string {
	lines := strings.Split(text, "\n")
	limit := min(len(lines), nameLineLimit)
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) >= 50 {
			continue
		}
		if strings.Contains(line, "@") || strings.Contains(strings.ToLower(line), "http") {
			continue
		}
		return line
	}
	return ""
}

// ExtractExperienceYears returns the years of experience mentioned in the
// text, or 0 when no pattern matches.
func ExtractExperienceYears(text string) int {
	lower := strings.ToLower(text)
	for _, pattern := range experiencePatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return years
		}
	}
	return 0
}
