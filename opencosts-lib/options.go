// ABOUTME: Configuration options for the OpenCosts library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package opencosts

import (
	"time"

	"opencosts-api/core/catalog"
	"opencosts-api/core/interfaces"
	"opencosts-api/core/workers"
	stdhttp "opencosts-api/infrastructure/http/standard"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client. Timeout and user agent options are ignored.
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics records fetch and run observations
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithBaseURL sets the catalog website root used for model URLs and detail pages
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		c.BaseURL = baseURL
		return nil
	}
}

// WithAPIBaseURL sets the catalog JSON API root
func WithAPIBaseURL(apiBaseURL string) Option {
	return func(c *Config) error {
		c.APIBaseURL = apiBaseURL
		return nil
	}
}

// WithConcurrency sets how many catalog requests each stage keeps in flight
func WithConcurrency(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "concurrency must be at least 1").WithContext("concurrency", n)
		}
		c.Concurrency = n
		return nil
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive").WithContext("timeout", timeout.String())
		}
		c.Timeout = timeout
		return nil
	}
}

// WithUserAgent sets the User-Agent of the default HTTP client
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		c.UserAgent = userAgent
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		BaseURL:     catalog.DefaultBaseURL,
		Concurrency: workers.DefaultPoolWidth,
		Timeout:     stdhttp.DefaultTimeout,
		UserAgent:   stdhttp.DefaultUserAgent,
	}
}
