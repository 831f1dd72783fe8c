package web

import (
	"fmt"
	"html"
	"strings"

	"github.com/niewin/devjobs/internal/models"
	"github.com/niewin/devjobs/internal/utils"
)

const (
	menuHome  = "Home"
	menuAbout = "About"

	alertSuccess = "success"
	alertError   = "error"
)

var menu = []string{menuHome, menuAbout}

// panelDocument wraps panel content in a standalone document for an iframe srcdoc
const panelDocument = `<!DOCTYPE html><html><head><meta charset="utf-8"><base target="_blank">` +
	`<style>body{margin:0;padding:8px;background:#0e1117;font-family:sans-serif}a{color:#8ab4f8}</style></head>` +
	`<body><div style="color:#fff">%s</div></body></html>`

// Alert is a coloured message box on the page
type Alert struct {
	Kind string
	Text string
}

// Card is the view of one posting
type Card struct {
	Title        string
	Company      string
	Location     string
	Published    string
	PublishedAgo string
	// DescriptionDoc and ApplyDoc are full HTML documents, rendered as iframe srcdoc
	DescriptionDoc string
	ApplyDoc       string
}

// Results is the outcome of a submitted search
type Results struct {
	Error  string
	Notice string
	Total  string
	Cards  []Card
}

// Page is everything the page template renders
type Page struct {
	PageTitle string
	Title     string
	Menu      []string
	Choice    string
	Query     models.SearchQuery
	Alerts    []Alert
	Results   *Results
	Subscribe *Alert
}

func (s *Server) newPage(choice string) *Page {
	if choice != menuAbout {
		choice = menuHome
	}
	return &Page{
		PageTitle: s.cfg.Web.PageTitle,
		Title:     s.cfg.Web.Title,
		Menu:      menu,
		Choice:    choice,
	}
}

func newCard(p models.Posting) Card {
	return Card{
		Title:          p.Title,
		Company:        p.Company.Name,
		Location:       p.Location,
		Published:      p.Published,
		PublishedAgo:   utils.RelativePublished(p.Published),
		DescriptionDoc: fmt.Sprintf(panelDocument, p.Description),
		ApplyDoc:       fmt.Sprintf(panelDocument, applyContent(p.HowToApply())),
	}
}

func applyContent(howToApply string) string {
	escaped := html.EscapeString(howToApply)
	if strings.HasPrefix(howToApply, "http://") || strings.HasPrefix(howToApply, "https://") {
		return fmt.Sprintf(`<a href="%s" rel="noopener noreferrer">%s</a>`, escaped, escaped)
	}
	return escaped
}
