package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/five82/tailview/internal/filter"
)

func TestPoll_RefreshesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 10)
	done := make(chan struct{})
	go func() {
		Poll(ctx, 10*time.Millisecond, func() {
			select {
			case calls <- struct{}{}:
			default:
			}
		})
		close(done)
	}()

	for i := 0; i < 3; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatalf("refresh %d never happened", i+1)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Poll did not return after cancel")
	}
}

func TestPoll_KeepsFixedIntervalWhileFailing(t *testing.T) {
	dir := t.TempDir()
	opts := isolatedOptions(t, filepath.Join(dir, "missing.log"))
	s, err := load(opts)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()

	failures := 0
	Poll(ctx, 20*time.Millisecond, func() {
		if view := s.viewer.Refresh("", filter.Params{}); view.Err != nil {
			failures++
		}
	})
	if failures < 6 {
		t.Fatalf("failed refreshes = %d in 250ms at a 20ms interval, want at least 6", failures)
	}
}
