// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jobika/jobika/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeProfile outputs a human-readable summary of an extracted resume profile.
func (p *Printer) PrintResumeProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", orDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", orDash(profile.Phone)))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.ExperienceYears))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED RESUME PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobBatch outputs a summary of an aggregated job batch.
func (p *Printer) PrintJobBatch(jobs []types.JobRecord) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total jobs: %d\n\n", len(jobs)))
	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		sb.WriteString(fmt.Sprintf("  • %s at %s (%s)\n", job.Title, job.Company, job.Source))
	}
	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jobs)-maxItemsToShow))
	}

	p.printBox("AGGREGATED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchSummary outputs one resume/job compatibility score, splitting
// the job's required skills into those the profile already holds and those
// it is missing.
func (p *Printer) PrintMatchSummary(profile *types.ResumeProfile, job *types.JobRecord, score int) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:     %s at %s\n", job.Title, job.Company))
	sb.WriteString(fmt.Sprintf("Score:   %d / %d\n", score, types.MaxMatchScore))

	var have, missing []string
	for _, skill := range job.RequiredSkills {
		if profile != nil && profile.HasSkill(skill) {
			have = append(have, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	if len(have) > 0 {
		sb.WriteString(fmt.Sprintf("Have:    %s\n", strings.Join(have, ", ")))
	}
	if len(missing) > 0 {
		sb.WriteString(fmt.Sprintf("Missing: %s\n", strings.Join(missing, ", ")))
	}

	p.printBox("MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the ranked skill-gap recommendations.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		p.printBox("SKILL RECOMMENDATIONS", "No skill gaps found")
		return
	}

	var sb strings.Builder
	for _, rec := range recs {
		sb.WriteString(fmt.Sprintf("  • %s [%s]\n", rec.Skill, rec.Priority))
		sb.WriteString(fmt.Sprintf("    %s\n", rec.ResourceHint))
	}

	p.printBox("SKILL RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// orDash substitutes a dash for empty optional fields.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
