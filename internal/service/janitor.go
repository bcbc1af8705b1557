// Package service holds long-running background services.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
)

// Janitor periodically removes stale conversation history.
type Janitor struct {
	history  repo.HistoryRepo
	maxAge   time.Duration
	interval time.Duration
	stop     chan struct{}
}

// NewJanitor creates a janitor that deletes history older than maxAge.
func NewJanitor(history repo.HistoryRepo, maxAge time.Duration) *Janitor {
	return &Janitor{
		history:  history,
		maxAge:   maxAge,
		interval: time.Hour,
		stop:     make(chan struct{}),
	}
}

// Start runs the cleanup loop until Stop is called.
func (j *Janitor) Start() {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.sweep()
			case <-j.stop:
				return
			}
		}
	}()
}

// Stop terminates the cleanup loop.
func (j *Janitor) Stop() {
	close(j.stop)
}

func (j *Janitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := j.history.CleanupStale(ctx, time.Now().Add(-j.maxAge))
	if err != nil {
		fmt.Printf("[Janitor] History cleanup failed: %v\n", err)
		return
	}
	if n > 0 {
		fmt.Printf("[Janitor] Removed %d stale history messages\n", n)
	}
}
