package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_WholeWordOnly(t *testing.T) {
	m := NewMatcher([]string{"Go"})

	assert.Equal(t, []string{"Go"}, m.Match("I write Go every day"))
	assert.Empty(t, m.Match("Going to the office"), "label inside a larger word must not match")
	assert.Empty(t, m.Match("Cargo handling"), "label as a suffix must not match")
}

func TestMatch_PunctuationBoundaries(t *testing.T) {
	m := NewMatcher([]string{"Go", "Python"})

	assert.Equal(t, []string{"Go"}, m.Match("Skills: Go, Docker"))
	assert.Equal(t, []string{"Go"}, m.Match("(Go)"))
	assert.Equal(t, []string{"Go", "Python"}, m.Match("Go/Python"))
}

func TestMatch_CaseInsensitive(t *testing.T) {
	m := NewMatcher([]string{"Python", "React"})

	found := m.Match("experienced in PYTHON and react")
	assert.Equal(t, []string{"Python", "React"}, found, "canonical casing is returned regardless of input casing")
}

func TestMatch_SymbolLabels(t *testing.T) {
	m := NewMatcher([]string{"C++", "C#", "Node.js", "CI/CD"})

	assert.Contains(t, m.Match("5 years of C++ development"), "C++")
	assert.Contains(t, m.Match("backend in C#."), "C#")
	assert.Contains(t, m.Match("APIs with Node.js and Express"), "Node.js")
	assert.Contains(t, m.Match("owns the CI/CD pipeline"), "CI/CD")
}

func TestMatch_VocabularyOrderIsDeterministic(t *testing.T) {
	m := NewMatcher([]string{"React", "Python", "Docker"})

	text := "Docker, Python and React"
	first := m.Match(text)
	second := m.Match(text)
	assert.Equal(t, []string{"React", "Python", "Docker"}, first, "output follows vocabulary order, not text order")
	assert.Equal(t, first, second)
}

func TestMatch_EmptyText(t *testing.T) {
	m := NewMatcher(ResumeVocabulary)

	assert.Empty(t, m.Match(""))
	assert.Empty(t, m.Match("   \n\t "))
}

func TestMatch_OutOfVocabularySkillsDropped(t *testing.T) {
	found := ExtractSkills("expert in COBOL, Fortran and Python")
	assert.Equal(t, []string{"Python"}, found)
}

func TestVocabularies_AreDistinct(t *testing.T) {
	assert.Greater(t, len(ResumeVocabulary), len(JobVocabulary),
		"the job vocabulary is intentionally the smaller list")

	// Spring is only recognized in job descriptions
	assert.Contains(t, DeriveJobSkills("Spring Boot microservices"), "Spring")
	assert.NotContains(t, ExtractSkills("Spring Boot microservices"), "Spring")

	// Rust is only recognized in resumes
	assert.Contains(t, ExtractSkills("systems work in Rust"), "Rust")
	assert.NotContains(t, DeriveJobSkills("systems work in Rust"), "Rust")
}

func TestDeriveJobSkills_WholeWord(t *testing.T) {
	// "Java" must not fire inside "JavaScript"
	found := DeriveJobSkills("We need JavaScript engineers")
	assert.Contains(t, found, "JavaScript")
	assert.NotContains(t, found, "Java")
}
