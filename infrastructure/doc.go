// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as snapshot storage, HTTP communication, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory snapshot store using go-cache
// - cache/redis: Redis-based snapshot store shared between replicas
// - cache/sqlite: SQLite snapshot store that survives restarts
// - http/standard: Standard library HTTP client with a per-request timeout
// - logger/structured: logrus logger with optional rotated file output
// - metrics: Prometheus collectors for catalog fetches and pipeline runs
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "snapshot:latest", payload, 24*time.Hour)
//	value, err := cache.Get(ctx, "snapshot:latest")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:   "localhost:6379",
//	    KeyPrefix: "opencosts:",
//	})
//
// # HTTP Client
//
// Every Get is a single request. Failures are returned to the caller, which
// decides whether they are fatal:
//
//	client := standard.NewClient(standard.Options{Timeout: 30 * time.Second})
//	resp, err := client.Get(ctx, "https://openrouter.ai/api/v1/models")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.New(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Pipeline run completed", map[string]interface{}{
//	    "models_found":  4,
//	    "provider_rows": 17,
//	})
package infrastructure
