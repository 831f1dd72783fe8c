package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pterm/pterm"

	"github.com/niewin/devjobs/internal/config"
	"github.com/niewin/devjobs/internal/jobsapi"
	"github.com/niewin/devjobs/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const shutdownTimeout = 5 * time.Second

// Searcher runs one search against the jobs API
type Searcher interface {
	Search(ctx context.Context, q models.SearchQuery) (*jobsapi.Result, error)
}

// Server serves the job search page, the JSON API and the health check
type Server struct {
	cfg      *config.Config
	searcher Searcher
	logger   *pterm.Logger
	engine   *gin.Engine
}

// NewServer wires the routes. The JSON API requires basic auth only when
// both web username and password are configured.
func NewServer(cfg *config.Config, searcher Searcher, logger *pterm.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		searcher: searcher,
		logger:   logger,
		engine:   gin.New(),
	}

	s.engine.Use(gin.Recovery(), requestLogger(logger))
	s.engine.SetHTMLTemplate(tmpl)

	// Public endpoints
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/", s.handleIndex)
	s.engine.POST("/subscribe", s.handleSubscribe)

	api := s.engine.Group("/api")
	if cfg.Web.Username != "" && cfg.Web.Password != "" {
		api.Use(gin.BasicAuthForRealm(gin.Accounts{cfg.Web.Username: cfg.Web.Password}, "devjobs"))
	}
	api.GET("/jobs", s.handleAPIJobs)

	return s, nil
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured port until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Web.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	if s.cfg.Web.Username != "" {
		log.Printf("Web server listening on http://localhost%s (API authentication enabled)", addr)
	} else {
		log.Printf("Web server listening on http://localhost%s", addr)
	}
	s.logger.Info("web server started", s.logger.Args("addr", addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("web server stopping")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func requestLogger(logger *pterm.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			logger.Args(
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", c.Writer.Status(),
				"latency", time.Since(start).String(),
			))
	}
}
