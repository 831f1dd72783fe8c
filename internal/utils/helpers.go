package utils

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/niewin/devjobs/internal/models"
)

// publishedLayouts are the timestamp shapes the jobs API has been seen to emit
var publishedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// MatchesQuery checks if a posting's title contains search and its location contains location, ignoring case
func MatchesQuery(p models.Posting, search, location string) bool {
	title := strings.ToLower(p.Title)
	jobLocation := strings.ToLower(p.Location)

	return strings.Contains(title, strings.ToLower(search)) &&
		strings.Contains(jobLocation, strings.ToLower(location))
}

// FilterPostings returns the postings matching both terms, in their original order.
// Empty terms match everything. logger may be nil.
func FilterPostings(postings []models.Posting, search, location string, logger *pterm.Logger) []models.Posting {
	filtered := []models.Posting{}
	for _, p := range postings {
		if logger != nil {
			logger.Debug("Checking job", logger.Args("title", p.Title, "location", p.Location))
		}
		if MatchesQuery(p, search, location) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ParsePublished parses the published text of a posting
func ParsePublished(published string) (time.Time, bool) {
	published = strings.TrimSpace(published)
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, published); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RelativePublished returns e.g. "3 days ago", or "" when published is not a recognised timestamp
func RelativePublished(published string) string {
	t, ok := ParsePublished(published)
	if !ok {
		return ""
	}
	return humanize.Time(t)
}

// FormatCount formats a count with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// PlainText strips markup from an HTML fragment and collapses whitespace
func PlainText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Excerpt returns at most max runes of the plain text of an HTML fragment
func Excerpt(fragment string, max int) string {
	text := PlainText(fragment)
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:max])) + "..."
}
