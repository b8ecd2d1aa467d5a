package source

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jobika/jobika/internal/fetch"
	"github.com/jobika/jobika/internal/types"
)

const indeedBaseURL = "https://in.indeed.com"

// Indeed scrapes job cards from Indeed India search result pages.
type Indeed struct {
	opts Options
}

// NewIndeed creates an Indeed source with the given options.
func NewIndeed(opts Options) *Indeed {
	if opts.BaseURL == "" {
		opts.BaseURL = indeedBaseURL
	}
	return &Indeed{opts: opts}
}

// Name implements Source.
func (s *Indeed) Name() string { return "Indeed" }

// Fetch implements Source.
func (s *Indeed) Fetch(ctx context.Context, query, location string, limit int) ([]types.JobRecord, bool) {
	searchURL := s.opts.BaseURL + "/jobs?q=" + url.QueryEscape(query) + "&l=" + url.QueryEscape(location)

	result, err := fetch.URL(ctx, searchURL, s.opts.Fetch)
	if err != nil {
		if s.opts.Verbose {
			log.Printf("[SOURCE] Indeed fetch failed, using samples: %v", err)
		}
		return s.Samples(), false
	}

	doc, err := fetch.Document(result.HTML)
	if err != nil {
		return s.Samples(), false
	}

	var jobs []types.JobRecord
	doc.Find("div.job_seen_beacon").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		title := strings.TrimSpace(card.Find("h2.jobTitle").Text())
		company := strings.TrimSpace(card.Find("span.companyName").Text())
		if title == "" || company == "" {
			return true
		}

		cardLocation := strings.TrimSpace(card.Find("div.companyLocation").Text())
		if cardLocation == "" {
			cardLocation = location
		}

		jobs = append(jobs, types.JobRecord{
			Title:       title,
			Company:     company,
			Location:    cardLocation,
			Source:      s.Name(),
			Description: "Full job description available on Indeed",
			Salary:      "Not disclosed",
			PostedDate:  "Recently posted",
		})
		return len(jobs) < limit
	})

	if len(jobs) == 0 {
		return s.Samples(), false
	}
	return jobs, true
}

// Samples is the fixed fallback batch returned when live scraping fails.
func (s *Indeed) Samples() []types.JobRecord {
	return []types.JobRecord{
		{
			Title:       "Software Engineer",
			Company:     "Tech Company",
			Location:    "Bangalore",
			Source:      s.Name(),
			Description: "Looking for talented software engineers",
			Salary:      "₹8-12 LPA",
			PostedDate:  "2 days ago",
		},
	}
}
