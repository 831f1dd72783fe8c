package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/niewin/devjobs/internal/models"
)

func init() {
	pterm.DisableStyling()
}

func TestFormatURL(t *testing.T) {
	if got := FormatURL("https://acme.example/apply", false); got != "https://acme.example/apply" {
		t.Errorf("FormatURL(plain) = %q", got)
	}

	got := FormatURL("https://acme.example/apply", true)
	if !strings.HasPrefix(got, "\033]8;;https://acme.example/apply\a") {
		t.Errorf("FormatURL(hyperlink) = %q", got)
	}

	if got := FormatURL(models.NoApplicationURL, true); got != models.NoApplicationURL {
		t.Errorf("placeholder was linked: %q", got)
	}
}

func TestSearchSummary(t *testing.T) {
	got := SearchSummary(models.SearchQuery{Search: "go", Location: "remote"})
	if got != "You searched for go in remote" {
		t.Errorf("SearchSummary() = %q", got)
	}
}

func TestFormatPosting(t *testing.T) {
	p := models.Posting{
		Title:       "Backend Engineer",
		Company:     models.Company{Name: "Acme"},
		Location:    "Remote",
		Published:   "2024-05-01",
		Description: "<p>Build <b>APIs</b></p>",
	}

	got := FormatPosting(p, false)

	for _, want := range []string{"Backend Engineer", "Acme", "Remote", "2024-05-01", "Build APIs", "No application URL provided"} {
		if !strings.Contains(got, want) {
			t.Errorf("card missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<p>") {
		t.Errorf("card contains markup:\n%s", got)
	}
}

func TestPrintPostings(t *testing.T) {
	postings := []models.Posting{
		{Title: "Backend Engineer", Company: models.Company{Name: "Acme"}, Location: "Remote"},
	}

	var buf bytes.Buffer
	PrintPostings(&buf, 1500, postings, false)

	out := buf.String()
	if !strings.Contains(out, "Showing: 1,500 jobs") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "1 matching jobs") {
		t.Errorf("missing match count:\n%s", out)
	}

	buf.Reset()
	PrintPostings(&buf, 3, nil, false)
	if !strings.Contains(buf.String(), "No matching jobs found.") {
		t.Errorf("missing empty message:\n%s", buf.String())
	}
}
