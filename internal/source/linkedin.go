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

const linkedInBaseURL = "https://www.linkedin.com"

// LinkedIn attempts a plain fetch first and falls through to a headless
// browser when the page body is too short to hold listings; the board
// renders its public search results client-side, so without the browser
// option the fallback samples are the usual outcome.
type LinkedIn struct {
	opts Options
}

// NewLinkedIn creates a LinkedIn source with the given options.
func NewLinkedIn(opts Options) *LinkedIn {
	if opts.BaseURL == "" {
		opts.BaseURL = linkedInBaseURL
	}
	return &LinkedIn{opts: opts}
}

// Name implements Source.
func (s *LinkedIn) Name() string { return "LinkedIn" }

// Fetch implements Source.
func (s *LinkedIn) Fetch(ctx context.Context, query, location string, limit int) ([]types.JobRecord, bool) {
	searchURL := s.opts.BaseURL + "/jobs/search?keywords=" + url.QueryEscape(query) +
		"&location=" + url.QueryEscape(location)

	var html string
	if result, err := fetch.URL(ctx, searchURL, s.opts.Fetch); err == nil {
		html = result.HTML
	} else if s.opts.Verbose {
		log.Printf("[SOURCE] LinkedIn plain fetch failed: %v", err)
	}

	doc, err := fetch.Document(html)
	if err != nil {
		return s.Samples(), false
	}

	if fetch.ShouldUseBrowser(fetch.CleanWhitespace(doc.Find("body").Text())) {
		if !s.opts.UseBrowser {
			return s.Samples(), false
		}

		rendered, err := fetch.WithBrowser(ctx, searchURL, fetch.DefaultTimeout, s.opts.Verbose)
		if err != nil {
			if s.opts.Verbose {
				log.Printf("[SOURCE] LinkedIn browser fetch failed, using samples: %v", err)
			}
			return s.Samples(), false
		}
		if doc, err = fetch.Document(rendered); err != nil {
			return s.Samples(), false
		}
	}

	var jobs []types.JobRecord
	doc.Find("div.base-card").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		title := strings.TrimSpace(card.Find("h3.base-search-card__title").Text())
		company := strings.TrimSpace(card.Find("h4.base-search-card__subtitle").Text())
		if title == "" || company == "" {
			return true
		}

		cardLocation := strings.TrimSpace(card.Find("span.job-search-card__location").Text())
		if cardLocation == "" {
			cardLocation = location
		}

		jobs = append(jobs, types.JobRecord{
			Title:       title,
			Company:     company,
			Location:    cardLocation,
			Source:      s.Name(),
			Description: "Full job description available on LinkedIn",
			Salary:      "Not disclosed",
			PostedDate:  strings.TrimSpace(card.Find("time").Text()),
		})
		return len(jobs) < limit
	})

	if len(jobs) == 0 {
		return s.Samples(), false
	}
	return jobs, true
}

// Samples is the fixed fallback batch returned when live scraping is
// unavailable.
func (s *LinkedIn) Samples() []types.JobRecord {
	return []types.JobRecord{
		{
			Title:       "Senior Software Engineer",
			Company:     "Global Tech Corp",
			Location:    "Bangalore",
			Source:      s.Name(),
			Description: "Join our innovative team",
			Salary:      "₹15-25 LPA",
			PostedDate:  "3 days ago",
		},
	}
}
