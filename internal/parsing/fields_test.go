package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmail_FirstMatchWins(t *testing.T) {
	text := "Contact: jane.doe@example.com or backup jane@other.org"
	assert.Equal(t, "jane.doe@example.com", ExtractEmail(text))
}

func TestExtractEmail_NotFound(t *testing.T) {
	assert.Equal(t, "", ExtractEmail("no contact information here"))
}

func TestExtractEmail_MixedCaseDomain(t *testing.T) {
	assert.Equal(t, "Dev@Example.COM", ExtractEmail("reach me at Dev@Example.COM today"))
}

func TestExtractPhone_PatternPriority(t *testing.T) {
	// The country-code pattern wins even when a plain 10-digit number
	// appears earlier in the text.
	text := "Alt: 9123456789\nPrimary: +91-9876543210"
	assert.Equal(t, "+91-9876543210", ExtractPhone(text))
}

func TestExtractPhone_PlainTenDigits(t *testing.T) {
	assert.Equal(t, "9876543210", ExtractPhone("Call 9876543210 anytime"))
}

func TestExtractPhone_Parenthesized(t *testing.T) {
	assert.Equal(t, "(080) 123-4567", ExtractPhone("Office: (080) 123-4567"))
}

func TestExtractPhone_NotFound(t *testing.T) {
	assert.Equal(t, "", ExtractPhone("email only"))
}

func TestExtractName_FirstQualifyingLine(t *testing.T) {
	text := "Priya Sharma\npriya@example.com\nBangalore"
	assert.Equal(t, "Priya Sharma", ExtractName(text))
}

func TestExtractName_SkipsEmailAndURLLines(t *testing.T) {
	text := "priya@example.com\nhttps://github.com/priya\nPriya Sharma"
	assert.Equal(t, "Priya Sharma", ExtractName(text))
}

func TestExtractName_LengthBounds(t *testing.T) {
	// <= 3 chars and >= 50 chars are rejected
	long := "An extremely long header line that goes on well past fifty characters"
	text := "Ab\n" + long + "\nPriya Sharma"
	assert.Equal(t, "Priya Sharma", ExtractName(text))
}

func TestExtractName_OnlyFirstFiveLines(t *testing.T) {
	text := "a\nb\nc\nd\ne\nPriya Sharma"
	assert.Equal(t, "", ExtractName(text))
}

func TestExtractExperienceYears_Patterns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"years of experience", "7 years of experience in backend", 7},
		{"plus years experience", "5+ years experience shipping services", 5},
		{"experience colon", "Experience: 4 years", 4},
		{"years in", "3 years in data engineering", 3},
		{"no mention", "fresh graduate", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractExperienceYears(tt.text))
		})
	}
}

func TestExtractExperienceYears_FirstMatchOnly(t *testing.T) {
	// No aggregation across mentions; the first pattern that matches wins.
	text := "10 years of experience overall, 3 years in management"
	assert.Equal(t, 10, ExtractExperienceYears(text))
}

func TestExtractFields_Scenario(t *testing.T) {
	profile := ExtractFields("5+ years experience in backend systems using Python and React")

	assert.ElementsMatch(t, []string{"Python", "React"}, profile.Skills)
	assert.Equal(t, 5, profile.ExperienceYears)
}

func TestExtractFields_FullResume(t *testing.T) {
	text := "Priya Sharma\nSenior Backend Engineer\npriya.sharma@example.com | +91 9876543210\n\n" +
		"6 years of experience building services in Go and Python.\n" +
		"Stack: PostgreSQL, Redis, Docker, Kubernetes, AWS."

	profile := ExtractFields(text)
	require.NotNil(t, profile)

	assert.Equal(t, "Priya Sharma", profile.Name)
	assert.Equal(t, "priya.sharma@example.com", profile.Email)
	assert.Equal(t, "+91 9876543210", profile.Phone)
	assert.Equal(t, 6, profile.ExperienceYears)
	assert.ElementsMatch(t,
		[]string{"Go", "Python", "PostgreSQL", "Redis", "Docker", "Kubernetes", "AWS"},
		profile.Skills)
	assert.Equal(t, text, profile.RawText)
}

func TestExtractFields_TotalOnAnyText(t *testing.T) {
	profile := ExtractFields("")
	require.NotNil(t, profile)

	assert.Equal(t, "", profile.Email)
	assert.Equal(t, "", profile.Phone)
	assert.Equal(t, "", profile.Name)
	assert.Empty(t, profile.Skills)
	assert.Equal(t, 0, profile.ExperienceYears)
}

func TestExtractFields_Idempotent(t *testing.T) {
	text := "Dev Patel\ndev@example.com\n4 years of experience with React and Node.js"

	first := ExtractFields(text)
	second := ExtractFields(text)
	assert.Equal(t, first, second)
}
