package jobsapi

import (
	"context"

	"github.com/niewin/devjobs/internal/models"
	"github.com/niewin/devjobs/internal/utils"
)

// Result is the outcome of one search: how many postings the API returned
// and which of them matched the query
type Result struct {
	Total    int
	Postings []models.Posting
}

// Search fetches every posting and keeps those matching q
func (f *Fetcher) Search(ctx context.Context, q models.SearchQuery) (*Result, error) {
	postings, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if len(postings) == 0 {
		f.logger.Info("No data returned from the API.")
		return &Result{Postings: []models.Posting{}}, nil
	}

	filtered := utils.FilterPostings(postings, q.Search, q.Location, f.logger)
	if len(filtered) == 0 {
		f.logger.Info("No matching jobs found.")
	} else {
		f.logger.Info("Filtered Search Results", f.logger.Args("total", len(postings), "matched", len(filtered)))
	}

	return &Result{Total: len(postings), Postings: filtered}, nil
}
