package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"

	"github.com/niewin/devjobs/internal/logging"
	"github.com/niewin/devjobs/internal/models"
)

func samplePostings() []models.Posting {
	return []models.Posting{
		{Title: "Backend Engineer", Location: "Remote"},
		{Title: "Frontend Dev", Location: "Onsite"},
		{Title: "Senior Backend ENGINEER", Location: "Berlin (Remote)"},
		{Title: "Data Engineer", Location: "Onsite"},
	}
}

func titles(postings []models.Posting) []string {
	out := make([]string, len(postings))
	for i, p := range postings {
		out[i] = p.Title
	}
	return out
}

func TestFilterPostingsEmptyTermsReturnAllInOrder(t *testing.T) {
	postings := samplePostings()

	got := FilterPostings(postings, "", "", nil)

	if len(got) != len(postings) {
		t.Fatalf("got %d postings, want %d", len(got), len(postings))
	}
	for i := range postings {
		if got[i] != postings[i] {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], postings[i])
		}
	}
}

func TestFilterPostingsExample(t *testing.T) {
	postings := []models.Posting{
		{Title: "Backend Engineer", Location: "Remote"},
		{Title: "Frontend Dev", Location: "Onsite"},
	}

	got := FilterPostings(postings, "engineer", "", nil)

	if len(got) != 1 || got[0].Title != "Backend Engineer" {
		t.Errorf("got %v, want [Backend Engineer]", titles(got))
	}
}

func TestFilterPostingsCaseInsensitive(t *testing.T) {
	tests := []struct {
		search   string
		location string
		want     []string
	}{
		{"BACKEND", "", []string{"Backend Engineer", "Senior Backend ENGINEER"}},
		{"backend engineer", "remote", []string{"Backend Engineer", "Senior Backend ENGINEER"}},
		{"", "ONSITE", []string{"Frontend Dev", "Data Engineer"}},
		{"eNgInEeR", "onsite", []string{"Data Engineer"}},
	}

	for _, tt := range tests {
		got := titles(FilterPostings(samplePostings(), tt.search, tt.location, nil))
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("FilterPostings(%q, %q) = %v, want %v", tt.search, tt.location, got, tt.want)
		}
	}
}

func TestFilterPostingsExcludesMissingTerms(t *testing.T) {
	if got := FilterPostings(samplePostings(), "rust", "", nil); len(got) != 0 {
		t.Errorf("search miss returned %v", titles(got))
	}
	if got := FilterPostings(samplePostings(), "", "tokyo", nil); len(got) != 0 {
		t.Errorf("location miss returned %v", titles(got))
	}
	if got := FilterPostings(samplePostings(), "frontend", "remote", nil); len(got) != 0 {
		t.Errorf("both terms must match, got %v", titles(got))
	}
}

func TestFilterPostingsKeepsDuplicates(t *testing.T) {
	p := models.Posting{Title: "Go Developer", Location: "Remote"}

	got := FilterPostings([]models.Posting{p, p}, "go", "", nil)

	if len(got) != 2 {
		t.Errorf("got %d postings, want 2", len(got))
	}
}

func TestFilterPostingsLogsChecks(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, pterm.LogLevelDebug)

	FilterPostings(samplePostings(), "engineer", "", logger)

	if got := strings.Count(buf.String(), "Checking job"); got != 4 {
		t.Errorf("got %d check lines, want 4", got)
	}
}

func TestRelativePublished(t *testing.T) {
	published := time.Now().Add(-72 * time.Hour).UTC().Format(time.RFC3339)
	if got := RelativePublished(published); got != "3 days ago" {
		t.Errorf("RelativePublished(%q) = %q, want 3 days ago", published, got)
	}

	if got := RelativePublished("last week"); got != "" {
		t.Errorf("RelativePublished(unparseable) = %q, want empty", got)
	}
}

func TestParsePublishedLayouts(t *testing.T) {
	for _, s := range []string{"2024-05-01T10:00:00Z", "2024-05-01T10:00:00", "2024-05-01 10:00:00", "2024-05-01"} {
		got, ok := ParsePublished(s)
		if !ok {
			t.Errorf("ParsePublished(%q) failed", s)
			continue
		}
		if got.Year() != 2024 || got.Month() != time.May || got.Day() != 1 {
			t.Errorf("ParsePublished(%q) = %v", s, got)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1234); got != "1,234" {
		t.Errorf("FormatCount(1234) = %q, want 1,234", got)
	}
	if got := FormatCount(7); got != "7" {
		t.Errorf("FormatCount(7) = %q, want 7", got)
	}
}

func TestPlainText(t *testing.T) {
	html := `<div><h2>About</h2>
<p>We build <b>Go</b> services.</p><script>alert(1)</script></div>`

	if got := PlainText(html); got != "About We build Go services." {
		t.Errorf("PlainText() = %q", got)
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("<p>short</p>", 20); got != "short" {
		t.Errorf("Excerpt() = %q, want short", got)
	}
	if got := Excerpt("<p>abcdefghij klm</p>", 10); got != "abcdefghij..." {
		t.Errorf("Excerpt() = %q, want abcdefghij...", got)
	}
}
