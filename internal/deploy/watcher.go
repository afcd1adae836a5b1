package deploy

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

type Detector interface {
	CountChangedSince(ctx context.Context, since time.Time) (int, error)
}

type Trigger interface {
	Trigger(ctx context.Context) error
}

// Watcher decides on each tick whether a redeploy is due. A change that
// could not be deployed, because the hook failed or was throttled, stays
// pending and is retried on the next tick.
type Watcher struct {
	detector Detector
	hook     Trigger
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	pending bool
}

func NewWatcher(detector Detector, hook Trigger, interval time.Duration) *Watcher {
	return &Watcher{
		detector: detector,
		hook:     hook,
		interval: interval,
		now:      time.Now,
	}
}

// Lookback is how far back each tick checks. It overlaps the previous tick
// so a slow tick does not miss an update.
func (w *Watcher) Lookback() time.Duration {
	return w.interval * 5 / 4
}

// Tick checks for changes and triggers the hook when needed. It reports
// whether a deploy was triggered.
func (w *Watcher) Tick(ctx context.Context) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	count, err := w.detector.CountChangedSince(ctx, w.now().Add(-w.Lookback()))
	if err != nil {
		return false, err
	}
	if count == 0 && !w.pending {
		return false, nil
	}

	if err := w.hook.Trigger(ctx); err != nil {
		w.pending = true
		if errors.Is(err, ErrThrottled) {
			log.Printf("[deploy] changes=%d deferred: %v", count, err)
			return false, nil
		}
		return false, err
	}

	w.pending = false
	log.Printf("[deploy] triggered changes=%d", count)
	return true, nil
}
