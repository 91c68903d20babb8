// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package opencosts

import (
	"os"
	"time"

	"opencosts-api/core/interfaces"
	stdhttp "opencosts-api/infrastructure/http/standard"
	"opencosts-api/infrastructure/logger/structured"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient(timeout time.Duration, userAgent string) interfaces.HTTPClient {
	return stdhttp.NewClient(stdhttp.Options{
		Timeout:   timeout,
		UserAgent: userAgent,
	})
}

// DefaultLogger creates a text logger on stderr at the given level
func DefaultLogger(level string) interfaces.Logger {
	return structured.New(structured.Options{
		Level:  level,
		Format: "text",
		Output: os.Stderr,
	})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}
