// Package api provides the HTTP API layer for OpenCosts.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	GET  /              service banner
//	GET  /health        liveness
//	POST /refresh-data  run the pipeline, store the snapshot, rewrite the CSV file
//	GET  /csv           latest snapshot as a CSV download (404 before the first refresh)
//	GET  /rows          latest snapshot as flat JSON rows
//	GET  /models        live run grouped by author, optional ?terms=a,b
//	GET  /metrics       Prometheus metrics, when enabled
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  60,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	handlers.NewSystemHandler().RegisterRoutes(humaAPI)
//	handlers.NewRefreshHandler(refreshService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format produced by Huma. Catalog failures map to
// 503 (catalog 5xx or unreachable), 429 (catalog throttling), 502 (other
// catalog 4xx) and 504 (timeouts); a missing snapshot maps to 404.
package api
