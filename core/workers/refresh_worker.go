// ABOUTME: Refresh worker republishes pricing data in the background on a fixed interval
// ABOUTME: Also accepts on-demand triggers; at most one refresh runs at a time

package workers

import (
	"context"
	"sync"
	"time"

	"opencosts-api/core/interfaces"
)

// RefreshConfig holds configuration for the refresh worker
type RefreshConfig struct {
	// Interval between scheduled refreshes
	Interval time.Duration

	// RunOnStart performs one refresh immediately after Start
	RunOnStart bool
}

// DefaultRefreshConfig returns the default refresh configuration
func DefaultRefreshConfig() RefreshConfig {
	return RefreshConfig{
		Interval:   6 * time.Hour,
		RunOnStart: true,
	}
}

// RefreshWorker drives interfaces.RefreshService from a ticker
type RefreshWorker struct {
	service  interfaces.RefreshService
	logger   interfaces.Logger
	interval time.Duration
	onStart  bool

	trigger chan struct{}
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.Mutex
	running bool
}

// NewRefreshWorker creates a new refresh worker. logger may be nil.
func NewRefreshWorker(service interfaces.RefreshService, logger interfaces.Logger, config RefreshConfig) *RefreshWorker {
	if config.Interval <= 0 {
		config.Interval = DefaultRefreshConfig().Interval
	}

	return &RefreshWorker{
		service:  service,
		logger:   logger,
		interval: config.Interval,
		onStart:  config.RunOnStart,
		trigger:  make(chan struct{}, 1),
	}
}

// Start launches the refresh loop
func (rw *RefreshWorker) Start() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.running {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	rw.cancel = cancel
	rw.wg.Add(1)
	go rw.run(ctx)

	rw.running = true
	return nil
}

// Stop cancels any in-flight refresh and waits for the loop to exit
func (rw *RefreshWorker) Stop() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if !rw.running {
		return nil
	}

	rw.cancel()
	rw.wg.Wait()

	rw.running = false
	return nil
}

// Trigger requests a refresh outside the schedule. Triggers arriving while one is
// already pending are coalesced and reported with ErrRefreshPending.
func (rw *RefreshWorker) Trigger() error {
	rw.mu.Lock()
	running := rw.running
	rw.mu.Unlock()
	if !running {
		return ErrWorkerNotRunning
	}

	select {
	case rw.trigger <- struct{}{}:
		return nil
	default:
		return ErrRefreshPending
	}
}

func (rw *RefreshWorker) run(ctx context.Context) {
	defer rw.wg.Done()

	if rw.onStart {
		rw.refresh(ctx, "startup")
	}

	ticker := time.NewTicker(rw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rw.refresh(ctx, "schedule")
		case <-rw.trigger:
			rw.refresh(ctx, "trigger")
		case <-ctx.Done():
			return
		}
	}
}

func (rw *RefreshWorker) refresh(ctx context.Context, reason string) {
	start := time.Now()
	result, err := rw.service.Refresh(ctx)
	if rw.logger == nil {
		return
	}

	if err != nil {
		rw.logger.Error("Scheduled refresh failed", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
		return
	}

	rw.logger.Info("Scheduled refresh completed", map[string]interface{}{
		"reason":        reason,
		"provider_rows": len(result.Snapshot.Rows),
		"duration_ms":   time.Since(start).Milliseconds(),
	})
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "refresh worker is not running"}
	ErrRefreshPending   = &WorkerError{Message: "a refresh is already pending"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
