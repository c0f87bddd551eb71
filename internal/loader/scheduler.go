package loader

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs a load once at start and then every Interval. A zero
// Interval runs the initial load only.
type Scheduler struct {
	Load     func(ctx context.Context) error
	Interval time.Duration
	Logger   *zap.Logger
}

// Start runs the initial load synchronously, then keeps reloading in the
// background until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.runOnce(ctx)

	if s.Interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.Logger.Info("refresh scheduler stopped")
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

// runOnce swallows the error; Load has already logged it.
func (s *Scheduler) runOnce(ctx context.Context) {
	_ = s.Load(ctx)
}
