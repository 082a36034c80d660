package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/expense-keeper/internal/logger"
)

type clientRefreshJob struct {
	expenseService ClientExpenseService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls
// expenseService.RefreshCache on a ticker. The job is idle until Start is
// called.
func NewClientRefreshJob(expenseService ClientExpenseService) ClientRefreshJob {
	return &clientRefreshJob{expenseService: expenseService}
}

// Start implements ClientRefreshJob. It stops any previously running job,
// then launches a background goroutine that refreshes the cache every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, session *Session, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// Failures are expected while offline; keep ticking, but
				// leave a trace so a persistently stale cache is explainable.
				if err := j.expenseService.RefreshCache(jobCtx, session); err != nil {
					logger.FromContext(jobCtx).Warn().
						Err(err).
						Int64("user_id", session.UserID).
						Msg("background cache refresh failed")
				}
			}
		}
	}()
}

// Stop implements ClientRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
