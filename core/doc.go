// Package core contains the business logic for OpenCosts.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (DiscoveredModel, ProviderRow, Snapshot)
// - catalog: Read-only client for the model catalog service
// - matcher: Free-tier exclusion and search term matching
// - discovery: Finds matching models and scrapes their creation dates
// - expansion: Flattens models into one row per hosting provider
// - pipeline: Runs discovery then expansion and records the outcome
// - aggregator: Groups rows by author and averages prices
// - export: CSV, nested JSON and text report renderings
// - snapshot, refresh: Keep and republish the latest run for the web layer
// - workers: Bounded ordered fan-out and the scheduled refresh loop
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, metrics)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Per-unit catalog failures are logged and absorbed; only a failed model listing aborts a run
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	client := catalog.NewClient(deps, catalog.Config{})
//	runner := pipeline.NewService(
//	    discovery.NewService(client, deps, workers.DefaultPoolWidth),
//	    expansion.NewService(client, deps, workers.DefaultPoolWidth),
//	    deps,
//	)
//
//	snapshot, err := runner.Run(ctx, []string{"Sonnet 4", "Kimi K2"})
package core
