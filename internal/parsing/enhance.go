package parsing

import "regexp"

// actionVerbRules rewrite weak resume phrasing into stronger action verbs.
// The rules run sequentially against the whole text, so a later rule may
// rewrite the output of an earlier one: "made" becomes "created", which the
// final rule then expands to "designed and implemented". The order is part
// of the output contract.
var actionVerbRules = compileVerbRules([][2]string{
	{"worked on", "developed and implemented"},
	{"did", "executed"},
	{"made", "created"},
	{"helped", "facilitated"},
	{"was responsible for", "managed and oversaw"},
	{"used", "utilized and leveraged"},
	{"got", "achieved"},
	{"did work", "contributed to"},
	{"handled", "orchestrated"},
	{"dealt with", "managed"},
	{"worked with", "collaborated with"},
	{"learned", "acquired expertise in"},
	{"improved", "optimized and enhanced"},
	{"fixed", "resolved and debugged"},
	{"built", "architected and developed"},
	{"created", "designed and implemented"},
})

type verbRule struct {
	pattern     *regexp.Regexp
	replacement string
}

func compileVerbRules(pairs [][2]string) []verbRule {
	rules := make([]verbRule, len(pairs))
	for i, pair := range pairs {
		rules[i] = verbRule{
			pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(pair[0]) + `\b`),
			replacement: pair[1],
		}
	}
	return rules
}

// EnhanceText rewrites weak action phrases in resume text into stronger
// equivalents. Matching is case-insensitive and whole-word; replacements
// are always lower-case. The input is otherwise left untouched, so line
// structure survives.
func EnhanceText(text string) string {
	for _, rule := range actionVerbRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}
