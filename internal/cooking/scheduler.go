package cooking

import (
	"context"
	"time"
)

// Scheduler drives a session's countdown. Start is called with the
// session lock held, so it must return immediately and never call tick
// synchronously. tick runs once per interval until ctx is cancelled.
type Scheduler interface {
	Start(ctx context.Context, interval time.Duration, tick func())
}

// TickerScheduler runs the countdown on a time.Ticker in its own goroutine.
type TickerScheduler struct{}

var _ Scheduler = TickerScheduler{}

// Start launches the ticker loop. Non-blocking.
func (TickerScheduler) Start(ctx context.Context, interval time.Duration, tick func()) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tick()
			}
		}
	}()
}
