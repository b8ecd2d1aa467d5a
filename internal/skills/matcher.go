package skills

import (
	"regexp"
	"strings"
)

// Matcher detects vocabulary skills in free text using case-insensitive,
// whole-word matching. Patterns are compiled once at construction; a Matcher
// is immutable and safe for concurrent use.
type Matcher struct {
	labels   []string
	patterns []*regexp.Regexp
}

// NewMatcher compiles a word-boundary pattern for every label in the
// vocabulary. Boundaries are expressed as explicit non-word character
// classes rather than \b so that labels ending in symbols ("C++", "C#",
// "Node.js") still anchor correctly.
func NewMatcher(vocabulary []string) *Matcher {
	m := &Matcher{
		labels:   vocabulary,
		patterns: make([]*regexp.Regexp, len(vocabulary)),
	}
	for i, label := range vocabulary {
		pattern := `(?i)(^|[^a-zA-Z0-9_])` + regexp.QuoteMeta(label) + `([^a-zA-Z0-9_]|$)`
		m.patterns[i] = regexp.MustCompile(pattern)
	}
	return m
}

// Match returns the canonical labels found in text, in vocabulary order.
// Free-form skills outside the vocabulary are ignored; the result never
// contains duplicates.
func (m *Matcher) Match(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var found []string
	for i, pattern := range m.patterns {
		if pattern.MatchString(text) {
			found = append(found, m.labels[i])
		}
	}
	return found
}

var (
	resumeMatcher = NewMatcher(ResumeVocabulary)
	jobMatcher    = NewMatcher(JobVocabulary)
)

// ExtractSkills scans resume text against ResumeVocabulary.
func ExtractSkills(text string) []string {
	return resumeMatcher.Match(text)
}

// DeriveJobSkills scans a job description against JobVocabulary.
func DeriveJobSkills(description string) []string {
	return jobMatcher.Match(description)
}
