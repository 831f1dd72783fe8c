package jobsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pterm/pterm"

	"github.com/niewin/devjobs/internal/client"
	"github.com/niewin/devjobs/internal/logging"
	"github.com/niewin/devjobs/internal/models"
)

// Kind classifies why a fetch failed
type Kind int

const (
	KindRequest Kind = iota
	KindConnection
	KindTimeout
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindTimeout:
		return "timeout"
	case KindDecode:
		return "decode"
	default:
		return "request"
	}
}

// FetchError is returned by Fetch for every failure. Message is meant for the page,
// LogMessage for the log file.
type FetchError struct {
	Kind Kind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch postings (%s): %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// LogMessage returns the line written to the log file
func (e *FetchError) LogMessage() string {
	switch e.Kind {
	case KindConnection:
		return "Connection error occurred."
	case KindTimeout:
		return "Request timed out."
	case KindDecode:
		return "Failed to decode JSON response."
	default:
		return fmt.Sprintf("An error occurred: %v", e.Err)
	}
}

// Message returns the text shown to the user
func (e *FetchError) Message() string {
	switch e.Kind {
	case KindConnection:
		return "Connection error occurred. Please check your internet connection."
	case KindTimeout:
		return "Request timed out. Please try again later."
	case KindDecode:
		return "Failed to decode JSON response."
	default:
		return fmt.Sprintf("An error occurred: %v", e.Err)
	}
}

// Fetcher retrieves the full list of postings from the jobs API
type Fetcher struct {
	httpClient *http.Client
	url        string
	logger     *pterm.Logger
	progress   *pb.ProgressBar
}

// Option configures a Fetcher
type Option func(*Fetcher)

// WithHTTPClient replaces the default client
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.httpClient.Timeout = d
	}
}

// WithLogger sets the logger that receives status and error lines
func WithLogger(l *pterm.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// WithProgress reports download progress of the response body on bar
func WithProgress(bar *pb.ProgressBar) Option {
	return func(f *Fetcher) {
		f.progress = bar
	}
}

// NewFetcher creates a Fetcher for the given endpoint
func NewFetcher(url string, opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: client.CreateHTTPClient(client.DefaultTimeout),
		url:        url,
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the endpoint the fetcher queries
func (f *Fetcher) URL() string {
	return f.url
}

// Fetch issues one GET and decodes the JSON array of postings.
// Every failure is logged exactly once and returned as a *FetchError. There is no retry.
func (f *Fetcher) Fetch(ctx context.Context) ([]models.Posting, error) {
	postings, err := f.fetch(ctx)
	if err != nil {
		f.logger.Error(err.LogMessage(), f.logger.Args("kind", err.Kind.String(), "url", f.url))
		return nil, err
	}

	f.logger.Debug("API response decoded", f.logger.Args("postings", len(postings)))
	return postings, nil
}

func (f *Fetcher) fetch(ctx context.Context) ([]models.Posting, *FetchError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindRequest, Err: fmt.Errorf("create request: %w", err)}
	}
	for key, values := range client.GetHeaders() {
		req.Header[key] = values
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: classify(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Kind: KindRequest,
			Err:  fmt.Errorf("%s for url: %s", resp.Status, f.url),
		}
	}
	f.logger.Info(fmt.Sprintf("Response Status Code: %d", resp.StatusCode))

	body, err := client.BodyReader(resp)
	if err != nil {
		return nil, &FetchError{Kind: KindDecode, Err: err}
	}
	defer body.Close()

	var reader io.Reader = body
	if f.progress != nil {
		if resp.ContentLength > 0 {
			f.progress.SetTotal(resp.ContentLength)
		}
		f.progress.Start()
		defer f.progress.Finish()
		reader = f.progress.NewProxyReader(body)
	}

	var postings []models.Posting
	if err := json.NewDecoder(reader).Decode(&postings); err != nil {
		if classify(err) == KindTimeout {
			return nil, &FetchError{Kind: KindTimeout, Err: err}
		}
		return nil, &FetchError{Kind: KindDecode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return postings, nil
}

func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnection
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindConnection
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return KindConnection
	}

	return KindRequest
}
