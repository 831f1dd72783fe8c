package models

// NoApplicationURL is shown in the apply panel when a posting has no application_url
const NoApplicationURL = "No application URL provided"

// Company represents the hiring company nested in a posting
type Company struct {
	Name string `json:"name"`
}

// Posting represents one job record returned by the jobs API
type Posting struct {
	Title          string  `json:"title"`
	Company        Company `json:"company"`
	Location       string  `json:"location"`
	Published      string  `json:"published"`
	Description    string  `json:"description"`
	ApplicationURL string  `json:"application_url,omitempty"`
}

// HowToApply returns the application URL or the placeholder text
func (p Posting) HowToApply() string {
	if p.ApplicationURL == "" {
		return NoApplicationURL
	}
	return p.ApplicationURL
}

// SearchQuery holds the free-text terms a user filters by
type SearchQuery struct {
	Search   string `json:"search" form:"search"`
	Location string `json:"location" form:"location"`
}
