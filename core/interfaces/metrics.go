package interfaces

import "time"

// Metrics receives observations from the pipeline. Implementations must be safe
// for concurrent use since fetches are recorded from worker goroutines.
type Metrics interface {
	// ObserveFetch records one catalog request. kind is "models", "endpoints" or "detail".
	ObserveFetch(kind string, err error, duration time.Duration)

	// ObserveRun records one complete pipeline run.
	ObserveRun(models, rows int, err error, duration time.Duration)
}
