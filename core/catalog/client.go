// ABOUTME: Catalog client issues read-only requests against the model catalog service
// ABOUTME: Lists models, lists per-model provider endpoints and scrapes detail pages for creation dates

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"opencosts-api/core/domain"
	coreerrors "opencosts-api/core/errors"
	"opencosts-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultBaseURL is the catalog website used for detail pages
	DefaultBaseURL = "https://openrouter.ai"

	// DefaultAPIBaseURL is the catalog JSON API root
	DefaultAPIBaseURL = DefaultBaseURL + "/api/v1"
)

// Fetch kinds reported to metrics
const (
	FetchModels    = "models"
	FetchEndpoints = "endpoints"
	FetchDetail    = "detail"
)

var createdPattern = regexp.MustCompile(`Created\s+([A-Za-z]{3}\s+\d{1,2},\s+\d{4})`)

// Config holds catalog locations
type Config struct {
	// BaseURL is the website root used to build detail page URLs
	BaseURL string

	// APIBaseURL is the JSON API root
	APIBaseURL string
}

// Client implements interfaces.CatalogClient on top of interfaces.HTTPClient.
// It keeps no per-session state; every call is one independent request.
type Client struct {
	deps       interfaces.Dependencies
	baseURL    string
	apiBaseURL string
}

// NewClient creates a new catalog client
func NewClient(deps interfaces.Dependencies, cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	apiBaseURL := strings.TrimRight(cfg.APIBaseURL, "/")
	if apiBaseURL == "" {
		apiBaseURL = baseURL + "/api/v1"
	}

	return &Client{
		deps:       deps,
		baseURL:    baseURL,
		apiBaseURL: apiBaseURL,
	}
}

// ListModels returns every model record in the catalog
func (c *Client) ListModels(ctx context.Context) ([]domain.RawRecord, error) {
	var payload struct {
		Data []domain.RawRecord `json:"data"`
	}
	if err := c.getJSON(ctx, FetchModels, c.apiBaseURL+"/models", &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// ListEndpoints returns the provider endpoint records for one model.
// The slug is used as-is in the path.
func (c *Client) ListEndpoints(ctx context.Context, canonicalSlug string) ([]domain.RawRecord, error) {
	var payload struct {
		Data struct {
			Endpoints []domain.RawRecord `json:"endpoints"`
		} `json:"data"`
	}
	endpointsURL := fmt.Sprintf("%s/models/%s/endpoints", c.apiBaseURL, canonicalSlug)
	if err := c.getJSON(ctx, FetchEndpoints, endpointsURL, &payload); err != nil {
		return nil, err
	}
	return payload.Data.Endpoints, nil
}

// FetchCreationDate fetches the model detail page and extracts the "Created <Mon> <D>, <YYYY>"
// date. A page without the pattern yields nil and no error.
func (c *Client) FetchCreationDate(ctx context.Context, canonicalSlug string) (*string, error) {
	pageURL := domain.DiscoveredModel{CanonicalSlug: canonicalSlug}.DetailURL(c.baseURL)

	start := time.Now()
	date, err := c.fetchCreationDate(ctx, pageURL)
	c.observe(FetchDetail, err, time.Since(start))

	return date, err
}

// DetailURL returns the website URL of a model
func (c *Client) DetailURL(model domain.DiscoveredModel) string {
	return model.DetailURL(c.baseURL)
}

func (c *Client) fetchCreationDate(ctx context.Context, pageURL string) (*string, error) {
	if c.deps.HTTPClient == nil {
		return nil, &coreerrors.RemoteFetchError{URL: pageURL, Err: errors.New("HTTP client not configured")}
	}

	resp, err := c.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return nil, &coreerrors.RemoteFetchError{URL: pageURL, Err: err}
	}
	defer resp.Body().Close()

	if !isSuccess(resp.StatusCode()) {
		return nil, &coreerrors.RemoteFetchError{URL: pageURL, StatusCode: resp.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, &coreerrors.RemoteFetchError{URL: pageURL, StatusCode: resp.StatusCode(), Err: err}
	}

	return ExtractCreationDate(doc.Text()), nil
}

// ExtractCreationDate returns the first "Created <Mon> <D>, <YYYY>" date in text, or nil.
func ExtractCreationDate(text string) *string {
	match := createdPattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	date := match[1]
	return &date
}

// getJSON performs one GET and decodes the JSON body into out
func (c *Client) getJSON(ctx context.Context, kind, url string, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		c.observe(kind, err, time.Since(start))
	}()

	if c.deps.HTTPClient == nil {
		return &coreerrors.RemoteFetchError{URL: url, Err: errors.New("HTTP client not configured")}
	}

	resp, err := c.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return &coreerrors.RemoteFetchError{URL: url, Err: err}
	}
	defer resp.Body().Close()

	if !isSuccess(resp.StatusCode()) {
		return &coreerrors.RemoteFetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	decoder := json.NewDecoder(resp.Body())
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return &coreerrors.RemoteFetchError{
			URL:        url,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	return nil
}

func (c *Client) observe(kind string, err error, d time.Duration) {
	if c.deps.Metrics != nil {
		c.deps.Metrics.ObserveFetch(kind, err, d)
	}
	if c.deps.Logger != nil && err == nil {
		c.deps.Logger.Debug("Catalog request completed", map[string]interface{}{
			"kind":        kind,
			"duration_ms": d.Milliseconds(),
		})
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
