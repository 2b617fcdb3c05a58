package helpchunk

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultUserAgent identifies helpchunk in outgoing requests.
const DefaultUserAgent = "helpchunk/1.0 (help-center crawler)"

// A Fetcher retrieves a URL and parses the response body as HTML. The
// interface keeps the network boundary narrow so extraction and chunking
// stay pure and testable.
type Fetcher interface {
	Fetch(url string) (*goquery.Document, error)
}

// HTTPFetcher fetches pages with plain HTTP GET requests, one at a time.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a fetcher with the given per-request timeout. A
// zero timeout means requests wait indefinitely. An empty userAgent
// falls back to DefaultUserAgent.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch issues a GET for the URL and parses the body with goquery. Any
// non-200 status is an error; there are no retries.
func (f *HTTPFetcher) Fetch(url string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return doc, nil
}
