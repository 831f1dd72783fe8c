package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/niewin/devjobs/internal/client"
	"github.com/niewin/devjobs/internal/config"
	"github.com/niewin/devjobs/internal/jobsapi"
	"github.com/niewin/devjobs/internal/logging"
	"github.com/niewin/devjobs/internal/models"
	"github.com/niewin/devjobs/internal/ui"
	"github.com/niewin/devjobs/internal/web"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config.yaml (default: $DEVJOBS_CONFIG or ./config.yaml)")
	port := flag.Int("port", 0, "Web server port (overrides config)")
	cliMode := flag.Bool("cli", false, "Search once and print results in the terminal instead of serving the web page")
	search := flag.String("search", "", "Job title substring to search for (terminal mode)")
	location := flag.String("location", "", "Location substring to filter by (terminal mode)")
	hyperlinks := flag.Bool("hyperlinks", false, "Print apply URLs as clickable terminal hyperlinks (terminal mode)")
	debug := flag.Bool("debug", false, "Enable debug logging")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	// Optional .env next to the binary or in the working directory
	_ = godotenv.Load()

	if *configPath == "" {
		*configPath = config.GetConfigPath()
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", *configPath, err)
	}
	if *port != 0 {
		cfg.Web.Port = *port
	}
	if *debug {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(cfg.Log.Dir, cfg.Log.File, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *cliMode {
		ui.PrintBanner(*silence || *noBanner)
		runSearch(ctx, cfg, logger.Logger, models.SearchQuery{Search: *search, Location: *location}, *hyperlinks)
		return
	}

	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}

	fetcher := jobsapi.NewFetcher(cfg.API.URL,
		jobsapi.WithHTTPClient(client.CreateHTTPClient(cfg.Timeout())),
		jobsapi.WithLogger(logger.Logger),
	)

	server, err := web.NewServer(cfg, fetcher, logger.Logger)
	if err != nil {
		log.Fatalf("Failed to create web server: %v", err)
	}

	log.Printf("Starting web server on port %d (jobs API: %s)...", cfg.Web.Port, cfg.API.URL)
	if err := server.Run(ctx); err != nil {
		logger.Error("web server stopped", logger.Args("error", err.Error()))
		log.Fatalf("Web server error: %v", err)
	}
}

// runSearch fetches and filters once, printing cards or the failure message.
// Failures are reported, never fatal.
func runSearch(ctx context.Context, cfg *config.Config, logger *pterm.Logger, q models.SearchQuery, hyperlinks bool) {
	summary := ui.SearchSummary(q)
	pterm.Success.Println(summary)
	logger.Info(summary)

	bar := pb.New64(0).Set(pb.Bytes, true).SetWriter(os.Stderr)
	fetcher := jobsapi.NewFetcher(cfg.API.URL,
		jobsapi.WithHTTPClient(client.CreateHTTPClient(cfg.Timeout())),
		jobsapi.WithLogger(logger),
		jobsapi.WithProgress(bar),
	)

	res, err := fetcher.Search(ctx, q)
	if err != nil {
		var fe *jobsapi.FetchError
		if errors.As(err, &fe) {
			pterm.Error.Println(fe.Message())
		} else {
			pterm.Error.Println(err.Error())
		}
		return
	}

	if res.Total == 0 {
		fmt.Println("No data returned from the API.")
		return
	}

	ui.PrintPostings(os.Stdout, res.Total, res.Postings, hyperlinks)
}
