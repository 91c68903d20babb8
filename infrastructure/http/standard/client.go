// ABOUTME: Standard HTTP client implementation with a per-request timeout
// ABOUTME: Each Get is exactly one request; failures are returned to the caller unretried

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"opencosts-api/core/interfaces"
)

const (
	// DefaultTimeout bounds every catalog request
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the scraper to the catalog service
	DefaultUserAgent = "Mozilla/5.0 (compatible; OpenCostsBot/1.0)"
)

// Options configures the HTTP client
type Options struct {
	Timeout   time.Duration
	UserAgent string

	// Transport overrides http.DefaultTransport, e.g. with a logging round tripper
	Transport http.RoundTripper
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return NewClient(Options{Timeout: timeout})
}

// NewClient creates a new HTTP client from options, applying defaults for zero values
func NewClient(opts Options) *StandardHTTPClient {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		userAgent: opts.UserAgent,
	}
}

// Get performs a single HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
