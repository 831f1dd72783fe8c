package jobsapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/niewin/devjobs/internal/models"
)

func TestSearchFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, samplePostings)
	}))
	defer server.Close()

	logger, buf := newTestLogger()
	res, err := NewFetcher(server.URL, WithLogger(logger)).Search(context.Background(), models.SearchQuery{Search: "engineer"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if res.Total != 2 {
		t.Errorf("Total = %d, want 2", res.Total)
	}
	if len(res.Postings) != 1 || res.Postings[0].Title != "Backend Engineer" {
		t.Errorf("Postings = %+v, want only Backend Engineer", res.Postings)
	}
	if !strings.Contains(buf.String(), "Filtered Search Results") {
		t.Errorf("missing results line: %q", buf.String())
	}
}

func TestSearchNoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, samplePostings)
	}))
	defer server.Close()

	logger, buf := newTestLogger()
	res, err := NewFetcher(server.URL, WithLogger(logger)).Search(context.Background(), models.SearchQuery{Location: "mars"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if res.Total != 2 || len(res.Postings) != 0 {
		t.Errorf("res = %+v, want total 2 and no postings", res)
	}
	if !strings.Contains(buf.String(), "No matching jobs found.") {
		t.Errorf("missing no-match line: %q", buf.String())
	}
}

func TestSearchEmptyAPI(t *testing.T) {
	for _, body := range []string{"[]", "null"} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, body)
		}))

		logger, buf := newTestLogger()
		res, err := NewFetcher(server.URL, WithLogger(logger)).Search(context.Background(), models.SearchQuery{})
		server.Close()
		if err != nil {
			t.Fatalf("Search(%s) failed: %v", body, err)
		}

		if res.Total != 0 || len(res.Postings) != 0 {
			t.Errorf("Search(%s) = %+v, want empty", body, res)
		}
		if !strings.Contains(buf.String(), "No data returned from the API.") {
			t.Errorf("Search(%s) missing no-data line: %q", body, buf.String())
		}
	}
}

func TestSearchPropagatesFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewFetcher(server.URL).Search(context.Background(), models.SearchQuery{})

	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != KindRequest {
		t.Fatalf("error = %v, want request FetchError", err)
	}
}
