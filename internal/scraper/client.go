// Package scraper provides a polite HTTP client for crawling the
// college catalog: identifying user agent, fixed delay between
// requests, and retry with backoff on transient failures.
package scraper

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	apperrors "github.com/aKrishnan0817/uchicago-ai-advisor/internal/errors"
)

// userAgent identifies the crawler to catalog administrators. The
// catalog is a public university site; hiding behind a browser string
// would be rude.
const userAgent = "UChicago-AcademicAdvisor-Bot/1.0 (educational project; polite crawling with delays)"

const initialRetryDelay = 1 * time.Second

// Client is an HTTP client for catalog scraping. All requests go
// through a shared delay gate so concurrent callers still crawl
// politely.
type Client struct {
	httpClient *http.Client
	delay      time.Duration
	maxRetries int
	retryDelay time.Duration

	mu       sync.Mutex
	lastDone time.Time
}

// NewClient creates a scraper client. delay is the minimum gap between
// consecutive requests.
func NewClient(timeout, delay time.Duration, maxRetries int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		delay:      delay,
		maxRetries: maxRetries,
		retryDelay: initialRetryDelay,
	}
}

// wait blocks until the polite delay since the previous request has
// passed. The first request goes through immediately.
func (c *Client) wait(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastDone.IsZero() {
		if remaining := c.delay - time.Since(c.lastDone); remaining > 0 {
			if err := Sleep(ctx, remaining); err != nil {
				return err
			}
		}
	}
	c.lastDone = time.Now()
	return nil
}

// Get performs a GET request with polite delay and retries.
// Caller is responsible for closing the response body.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	var resp *http.Response

	err := RetryWithBackoff(ctx, c.maxRetries, c.retryDelay, func() error {
		if err := c.wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return &permanentError{err: fmt.Errorf("failed to create request: %w", err)}
		}

		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Encoding", "gzip")

		resp, err = c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			// Close body for non-success responses since we won't return it
			_ = resp.Body.Close()

			scraperErr := apperrors.NewScraperError(url, resp.StatusCode, errors.New(http.StatusText(resp.StatusCode)))
			switch {
			case resp.StatusCode == http.StatusTooManyRequests:
				return scraperErr
			case resp.StatusCode >= 500:
				return scraperErr
			default:
				// Other 4xx won't get better with retries
				return &permanentError{err: scraperErr}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// GetDocument performs a GET request and parses the response as HTML.
func (c *Client) GetDocument(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress gzip: %w", err)
		}
		defer func() { _ = gzipReader.Close() }()
		reader = gzipReader
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return doc, nil
}
