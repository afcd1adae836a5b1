package deploy

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron     *cron.Cron
	watcher  *Watcher
	interval time.Duration
}

// NewScheduler runs the watcher every interval. Ticks never overlap; a tick
// still running when the next is due causes that one to be skipped.
func NewScheduler(w *Watcher, interval time.Duration) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		watcher:  w,
		interval: interval,
	}
}

// Start registers the job and starts the cron loop. ctx bounds every tick.
func (s *Scheduler) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", s.interval)
	_, err := s.cron.AddFunc(spec, func() {
		tctx, cancel := context.WithTimeout(ctx, s.interval)
		defer cancel()

		if _, err := s.watcher.Tick(tctx); err != nil {
			log.Printf("[deploy] tick failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}

	log.Printf("[deploy] scheduler started interval=%s lookback=%s", s.interval, s.watcher.Lookback())
	s.cron.Start()
	return nil
}

// Stop halts scheduling and returns a context that is done once a running
// tick has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
