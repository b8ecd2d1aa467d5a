package source

import (
	"context"
	"log"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/jobika/jobika/internal/fetch"
	"github.com/jobika/jobika/internal/types"
)

const naukriBaseURL = "https://www.naukri.com"

// Naukri scrapes job cards from Naukri.com search pages. Naukri's markup
// changes frequently and it ships strong anti-scraping measures, so the
// fallback path is taken often.
type Naukri struct {
	opts Options
}

// NewNaukri creates a Naukri source with the given options.
func NewNaukri(opts Options) *Naukri {
	if opts.BaseURL == "" {
		opts.BaseURL = naukriBaseURL
	}
	return &Naukri{opts: opts}
}

// Name implements Source.
func (s *Naukri) Name() string { return "Naukri" }

// Fetch implements Source.
func (s *Naukri) Fetch(ctx context.Context, query, location string, limit int) ([]types.JobRecord, bool) {
	slug := url.PathEscape(strings.ReplaceAll(strings.ToLower(query), " ", "-"))
	locSlug := url.PathEscape(strings.ReplaceAll(strings.ToLower(location), " ", "-"))
	searchURL := s.opts.BaseURL + "/" + slug + "-jobs-in-" + locSlug

	result, err := fetch.URL(ctx, searchURL, s.opts.Fetch)
	if err != nil {
		if s.opts.Verbose {
			log.Printf("[SOURCE] Naukri fetch failed, using samples: %v", err)
		}
		return s.Samples(), false
	}

	doc, err := fetch.Document(result.HTML)
	if err != nil {
		return s.Samples(), false
	}

	var jobs []types.JobRecord
	doc.Find("article.jobTuple").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		title := strings.TrimSpace(card.Find("a.title").Text())
		if title == "" {
			return true
		}

		company := strings.TrimSpace(card.Find("a.subTitle").Text())
		if company == "" {
			company = "Company"
		}

		jobs = append(jobs, types.JobRecord{
			Title:       title,
			Company:     company,
			Location:    toTitle(location),
			Source:      s.Name(),
			Description: "Full details on Naukri.com",
			Salary:      "Competitive",
			PostedDate:  "Recently",
		})
		return len(jobs) < limit
	})

	if len(jobs) == 0 {
		return s.Samples(), false
	}
	return jobs, true
}

// Samples is the fixed fallback batch returned when live scraping fails.
func (s *Naukri) Samples() []types.JobRecord {
	return []types.JobRecord{
		{
			Title:       "Full Stack Developer",
			Company:     "IT Services",
			Location:    "Bangalore",
			Source:      s.Name(),
			Description: "Exciting opportunity for full stack developers",
			Salary:      "₹10-15 LPA",
			PostedDate:  "1 week ago",
		},
	}
}

// toTitle upper-cases the first rune of each space-separated word.
func toTitle(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
