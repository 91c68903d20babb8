// ABOUTME: Main client for the OpenCosts library providing model discovery and provider pricing
// ABOUTME: Offers a clean API for using core functionality without HTTP server dependencies

package opencosts

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"opencosts-api/core/aggregator"
	"opencosts-api/core/catalog"
	"opencosts-api/core/discovery"
	"opencosts-api/core/expansion"
	"opencosts-api/core/export"
	"opencosts-api/core/interfaces"
	"opencosts-api/core/pipeline"
)

// Client is the main entry point for the OpenCosts library
type Client struct {
	// Core services
	catalog   *catalog.Client
	discovery interfaces.DiscoveryService
	expansion interfaces.ExpansionService
	pipeline  interfaces.PipelineService

	// Dependencies
	deps interfaces.Dependencies

	// Configuration
	config Config
}

// Config holds the configuration for the client
type Config struct {
	// HTTPClient overrides the default client built from Timeout and UserAgent
	HTTPClient interfaces.HTTPClient

	// Logger receives per-unit warnings; quiet by default
	Logger interfaces.Logger

	// Metrics is optional
	Metrics interfaces.Metrics

	// Catalog locations
	BaseURL    string
	APIBaseURL string

	// Concurrency is the number of in-flight catalog requests per stage
	Concurrency int

	// Default HTTP client settings
	Timeout   time.Duration
	UserAgent string
}

// NewClient creates a new OpenCosts client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.HTTPClient == nil {
		config.HTTPClient = DefaultHTTPClient(config.Timeout, config.UserAgent)
	}
	if config.Logger == nil {
		config.Logger = QuietLogger()
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Metrics:    config.Metrics,
	}

	catalogClient := catalog.NewClient(deps, catalog.Config{
		BaseURL:    config.BaseURL,
		APIBaseURL: config.APIBaseURL,
	})
	discoveryService := discovery.NewService(catalogClient, deps, config.Concurrency)
	expansionService := expansion.NewService(catalogClient, deps, config.Concurrency)

	return &Client{
		catalog:   catalogClient,
		discovery: discoveryService,
		expansion: expansionService,
		pipeline:  pipeline.NewService(discoveryService, expansionService, deps),
		deps:      deps,
		config:    config,
	}, nil
}

// Discover returns the catalog models whose display name contains any of terms,
// excluding free-tier variants, each with its creation date when available.
func (c *Client) Discover(ctx context.Context, terms []string) ([]Model, error) {
	models, err := c.discovery.Discover(ctx, terms)
	if err != nil {
		return nil, wrapError(err, "failed to discover models")
	}
	return models, nil
}

// Expand lists the hosting providers of each model. Models whose endpoints cannot
// be listed contribute no rows; the call itself never fails.
func (c *Client) Expand(ctx context.Context, models []Model) []Row {
	return c.expansion.Expand(ctx, models)
}

// Run discovers and expands in one call
func (c *Client) Run(ctx context.Context, terms []string) (*Snapshot, error) {
	snapshot, err := c.pipeline.Run(ctx, terms)
	if err != nil {
		return nil, wrapError(err, "pricing run failed")
	}
	return snapshot, nil
}

// Group nests rows under author and model, with average prices per model
func (c *Client) Group(rows []Row) []AuthorGroup {
	return aggregator.GroupByAuthor(rows)
}

// WriteCSV writes rows in the export column order
func (c *Client) WriteCSV(w io.Writer, rows []Row, includeCreationDate bool) error {
	if err := export.WriteCSV(w, rows, export.WithCreationDate(includeCreationDate)); err != nil {
		return NewError(ErrorTypeInternal, "failed to write csv").WithCause(err)
	}
	return nil
}

// WriteCSVFile writes rows to path, creating parent directories
func (c *Client) WriteCSVFile(path string, rows []Row, includeCreationDate bool) error {
	if err := export.WriteCSVFile(path, rows, export.WithCreationDate(includeCreationDate)); err != nil {
		return NewError(ErrorTypeInternal, "failed to write csv file").WithCause(err).WithContext("path", path)
	}
	return nil
}

// WriteJSON writes rows grouped by author and model as indented JSON, keyed by column name
func (c *Client) WriteJSON(w io.Writer, rows []Row) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export.ToAuthorEntries(rows)); err != nil {
		return NewError(ErrorTypeInternal, "failed to write json").WithCause(err)
	}
	return nil
}

// Report writes the compact one-line-per-row summary of a snapshot
func (c *Client) Report(w io.Writer, snapshot *Snapshot) error {
	return export.FormatReport(w, snapshot)
}

// Config returns the effective configuration
func (c *Client) Config() Config {
	return c.config
}
