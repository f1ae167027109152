package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// StaleCartRemover exposes the subset of application functionality required
// by the janitor.
type StaleCartRemover interface {
	RemoveStaleCarts(ctx context.Context, cutoff time.Time) (int64, error)
}

// CartJanitor periodically drops anonymous carts nobody touched for the
// configured retention window.
type CartJanitor struct {
	facade    StaleCartRemover
	interval  time.Duration
	retention time.Duration
	logger    *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCartJanitor constructs the cleanup worker.
func NewCartJanitor(facade StaleCartRemover, interval, retention time.Duration, logger *slog.Logger) *CartJanitor {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = 14 * 24 * time.Hour
	}
	return &CartJanitor{
		facade:    facade,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

// Start launches background cleanup.
func (j *CartJanitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.run(runCtx)
}

// Stop waits for the cleanup loop to finish.
func (j *CartJanitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *CartJanitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *CartJanitor) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-j.retention)
	removed, err := j.facade.RemoveStaleCarts(ctx, cutoff)
	if err != nil {
		j.logger.Error("stale cart sweep failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		j.logger.Info("stale carts removed", slog.Int64("count", removed))
	}
}
