package app

import (
	"context"
	"time"
)

const defaultPollInterval = 5 * time.Second

// Poll calls refresh immediately and then once per interval until ctx is
// cancelled. Failures are the refresh's own concern; the next tick simply
// tries again.
func Poll(ctx context.Context, interval time.Duration, refresh func()) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		refresh()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
