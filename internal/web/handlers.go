package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niewin/devjobs/internal/jobsapi"
	"github.com/niewin/devjobs/internal/models"
	"github.com/niewin/devjobs/internal/ui"
	"github.com/niewin/devjobs/internal/utils"
)

const invalidEmailMessage = "Please enter a valid email address."

type searchForm struct {
	Menu     string `form:"menu"`
	Search   string `form:"search"`
	Location string `form:"location"`
	Submit   string `form:"submit"`
}

type subscribeForm struct {
	Email string `form:"email" binding:"required,email"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// handleIndex renders the whole page for the current form submission
func (s *Server) handleIndex(c *gin.Context) {
	var form searchForm
	if err := c.ShouldBindQuery(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid query")
		return
	}

	page := s.newPage(form.Menu)
	if page.Choice == menuHome {
		q := models.SearchQuery{Search: form.Search, Location: form.Location}
		s.searchSummary(page, q)
		if form.Submit != "" {
			page.Results = s.search(c, q)
		}
	}

	c.HTML(http.StatusOK, "page.html", page)
}

// handleSubscribe acknowledges the email capture form. Nothing is sent.
func (s *Server) handleSubscribe(c *gin.Context) {
	page := s.newPage(menuHome)
	s.searchSummary(page, models.SearchQuery{})

	var form subscribeForm
	if err := c.ShouldBind(&form); err != nil {
		s.logger.Warn("invalid subscription email", s.logger.Args("error", err.Error()))
		page.Subscribe = &Alert{Kind: alertError, Text: invalidEmailMessage}
		c.HTML(http.StatusBadRequest, "page.html", page)
		return
	}

	msg := "A message was sent to " + form.Email
	s.logger.Info(msg)
	page.Subscribe = &Alert{Kind: alertSuccess, Text: msg}
	c.HTML(http.StatusOK, "page.html", page)
}

// handleAPIJobs returns the filtered postings as JSON
func (s *Server) handleAPIJobs(c *gin.Context) {
	var q models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.searcher.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": userMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"search":   q.Search,
		"location": q.Location,
		"total":    res.Total,
		"matched":  len(res.Postings),
		"jobs":     res.Postings,
	})
}

func (s *Server) searchSummary(page *Page, q models.SearchQuery) {
	page.Query = q
	summary := ui.SearchSummary(q)
	page.Alerts = append(page.Alerts, Alert{Kind: alertSuccess, Text: summary})
	s.logger.Info(summary)
}

func (s *Server) search(c *gin.Context, q models.SearchQuery) *Results {
	res, err := s.searcher.Search(c.Request.Context(), q)
	if err != nil {
		return &Results{Error: userMessage(err)}
	}

	if res.Total == 0 {
		return &Results{Notice: "No data returned from the API."}
	}

	results := &Results{Total: utils.FormatCount(res.Total)}
	if len(res.Postings) == 0 {
		results.Notice = "No matching jobs found."
		return results
	}

	results.Cards = make([]Card, 0, len(res.Postings))
	for _, p := range res.Postings {
		results.Cards = append(results.Cards, newCard(p))
	}
	return results
}

func userMessage(err error) string {
	var fe *jobsapi.FetchError
	if errors.As(err, &fe) {
		return fe.Message()
	}
	return err.Error()
}
